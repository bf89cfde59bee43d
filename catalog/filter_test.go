package catalog

import (
	"testing"

	"sartor/models"
	"sartor/pricing"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ProductID: "p1", Name: "Navy Polo Shirt", Category: "shirts", Price: "Rs. 1,999 - 2,500"},
		{ProductID: "p2", Name: "Slim Chinos", Category: "trousers", Price: "Rs. 4,000 - 5,500"},
		{ProductID: "p3", Name: "Linen Shirt", Category: "shirts", Price: "Rs. 6,500 - 7,000"},
		{ProductID: "p4", Name: "Leather Belt", Category: "accessories", Price: "price on request"},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductID)
	}
	return out
}

func TestFilterTextMatchesNameAndCategory(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Query: "shirt"})
	assert.Equal(t, []string{"p1", "p3"}, ids(got))

	// category text is searchable too
	got = Filter(sampleProducts(), Criteria{Query: "TROUSER"})
	assert.Equal(t, []string{"p2"}, ids(got))
}

func TestFilterCategorySentinel(t *testing.T) {
	all := Filter(sampleProducts(), Criteria{Category: "all"})
	assert.Len(t, all, 4)

	shirts := Filter(sampleProducts(), Criteria{Category: "shirts"})
	assert.Equal(t, []string{"p1", "p3"}, ids(shirts))
}

func TestFilterPriceBracket(t *testing.T) {
	under := Filter(sampleProducts(), Criteria{Bracket: pricing.BracketUnder2000})
	assert.Equal(t, []string{"p1"}, ids(under))

	// 4,000 sits on the shared inclusive bound
	mid := Filter(sampleProducts(), Criteria{Bracket: pricing.Bracket2000to4000})
	assert.Equal(t, []string{"p2"}, ids(mid))
	upper := Filter(sampleProducts(), Criteria{Bracket: pricing.Bracket4000to6000})
	assert.Equal(t, []string{"p2"}, ids(upper))

	over := Filter(sampleProducts(), Criteria{Bracket: pricing.BracketOver6000})
	assert.Equal(t, []string{"p3"}, ids(over))
}

func TestFilterUnparsablePriceOnlyMatchesAll(t *testing.T) {
	all := Filter(sampleProducts(), Criteria{Bracket: pricing.BracketAll})
	assert.Contains(t, ids(all), "p4")

	for _, b := range []string{pricing.BracketUnder2000, pricing.Bracket2000to4000, pricing.Bracket4000to6000, pricing.BracketOver6000} {
		got := Filter(sampleProducts(), Criteria{Bracket: b})
		assert.NotContains(t, ids(got), "p4")
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Query: "shirt", Category: "shirts", Bracket: pricing.BracketOver6000})
	assert.Equal(t, []string{"p3"}, ids(got))

	got = Filter(sampleProducts(), Criteria{Query: "shirt", Category: "trousers"})
	assert.Empty(t, got)
}

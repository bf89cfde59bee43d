package catalog

import (
	"testing"

	"sartor/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriceSwapsInvertedBounds(t *testing.T) {
	p := models.Product{Price: "Rs. 5,500 - 2,000"}

	assert.True(t, normalizePrice(&p))
	assert.Equal(t, 2000, p.PriceMin)
	assert.Equal(t, 5500, p.PriceMax)
	assert.Equal(t, "Rs. 2,000 - 5,500", p.Price)
}

func TestNormalizePriceSingleAmountIsBothBounds(t *testing.T) {
	p := models.Product{Price: "Rs. 1,999"}

	assert.True(t, normalizePrice(&p))
	assert.Equal(t, 1999, p.PriceMin)
	assert.Equal(t, 1999, p.PriceMax)
	assert.Equal(t, "Rs. 1,999 - 1,999", p.Price)
}

func TestNormalizePriceUnparsableStoresZeroBounds(t *testing.T) {
	p := models.Product{Price: "price on request"}

	assert.False(t, normalizePrice(&p))
	assert.Zero(t, p.PriceMin)
	assert.Zero(t, p.PriceMax)
	assert.Equal(t, "Rs. 0 - 0", p.Price)
}

package catalog

import (
	"sartor/models"
	"sartor/pricing"
	"sartor/utils"
)

// Criteria are the storefront filter controls. Zero values and the
// "all" sentinels disable their predicate; active predicates are ANDed.
type Criteria struct {
	Query    string
	Category string
	Bracket  string
}

// Filter returns the products matching all active criteria, keeping
// the input order. Text search is a case-insensitive substring match
// on name and category.
func Filter(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Query != "" &&
			!utils.ContainsIgnoreCase(p.Name, c.Query) &&
			!utils.ContainsIgnoreCase(p.Category, c.Query) {
			continue
		}
		if c.Category != "" && c.Category != "all" && p.Category != c.Category {
			continue
		}
		amount, ok := pricing.ParseAmount(p.Price)
		if !pricing.MatchesBracket(amount, ok, c.Bracket) {
			continue
		}
		out = append(out, p)
	}
	return out
}

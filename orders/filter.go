package orders

import (
	"sartor/models"
	"sartor/utils"
)

// FilterOrders returns orders matching both predicates, keeping the
// input order. Query is a case-insensitive substring match on customer
// name and order number; status is an exact match with "all" (or
// empty) bypassing it.
func FilterOrders(list []models.Order, query, status string) []models.Order {
	out := make([]models.Order, 0, len(list))
	for _, o := range list {
		if query != "" &&
			!utils.ContainsIgnoreCase(o.CustomerName, query) &&
			!utils.ContainsIgnoreCase(o.OrderNumber, query) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

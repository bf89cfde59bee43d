package orders

import (
	"testing"

	"sartor/models"

	"github.com/stretchr/testify/assert"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{OrderID: "o1", OrderNumber: "ORD-001", CustomerName: "Ahmed Hassan", Status: StatusPending},
		{OrderID: "o2", OrderNumber: "ORD-002", CustomerName: "Dilshan Perera", Status: StatusCancelled},
		{OrderID: "o3", OrderNumber: "ORD-003", CustomerName: "Ahmed Silva", Status: StatusDelivered},
	}
}

func orderIDs(list []models.Order) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.OrderID)
	}
	return out
}

func TestFilterOrdersStatusSentinel(t *testing.T) {
	all := FilterOrders(sampleOrders(), "", "all")
	assert.Len(t, all, 3)

	cancelled := FilterOrders(sampleOrders(), "", StatusCancelled)
	assert.Equal(t, []string{"o2"}, orderIDs(cancelled))
}

func TestFilterOrdersByNameAndNumber(t *testing.T) {
	byName := FilterOrders(sampleOrders(), "ahmed", "")
	assert.Equal(t, []string{"o1", "o3"}, orderIDs(byName))

	byNumber := FilterOrders(sampleOrders(), "ord-002", "")
	assert.Equal(t, []string{"o2"}, orderIDs(byNumber))
}

func TestFilterOrdersPredicatesAreANDed(t *testing.T) {
	got := FilterOrders(sampleOrders(), "ahmed", StatusDelivered)
	assert.Equal(t, []string{"o3"}, orderIDs(got))

	got = FilterOrders(sampleOrders(), "ahmed", StatusCancelled)
	assert.Empty(t, got)
}

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "Navy Polo Shirt", Size: "M", Quantity: 2, Price: 1500},
		{ProductName: "Slim Chinos", Size: "32", Quantity: 1, Price: 4200},
	}
	assert.Equal(t, 7200, ComputeTotal(items))
	assert.Zero(t, ComputeTotal(nil))
}

package orders

import (
	"context"
	"fmt"
	"time"

	"sartor/db"
	"sartor/models"
	"sartor/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FormatOrderNumber renders the human-readable order number for the
// nth order, zero-padded to three digits (ORD-001, ORD-042, ORD-1000).
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("ORD-%03d", n)
}

// ComputeTotal sums unit price x quantity over the lines.
func ComputeTotal(items []models.OrderItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// nextOrderNumber derives the next number from the current order
// count, as the original back office did. Deleting orders shrinks the
// count, so numbers can repeat after a delete; see DESIGN.md.
func nextOrderNumber(ctx context.Context) (string, error) {
	count, err := db.OrdersCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}
	return FormatOrderNumber(int(count) + 1), nil
}

// stampNew fills the creation-time fields of a new order: ids, the
// assigned number, the pending status and the total snapshot. Whatever
// the client sent for these fields is overwritten.
func stampNew(order *models.Order, number string, now time.Time) {
	order.OrderID = "o" + utils.GenerateID(14)
	order.OrderNumber = number
	order.Status = StatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	for i := range order.Items {
		order.Items[i].ItemID = "oi" + utils.GenerateID(14)
		order.Items[i].OrderID = order.OrderID
		order.Items[i].CreatedAt = now
	}
	order.TotalAmount = ComputeTotal(order.Items)
}

// insertOrder persists the header first, then the item rows. If the
// item insert fails the header is left behind and the error reported;
// listOrders tolerates such headers.
func insertOrder(ctx context.Context, order *models.Order) error {
	number, err := nextOrderNumber(ctx)
	if err != nil {
		return fmt.Errorf("order number: %w", err)
	}
	stampNew(order, number, time.Now())

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert header: %w", err)
	}

	docs := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		docs = append(docs, it)
	}
	if _, err := db.OrderItemsCollection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}
	return nil
}

// listOrders returns all orders newest-first with their items joined
// in. Headers without items (the documented orphan case) come back
// with an empty item slice.
func listOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []models.Order{}, nil
	}

	ids := make([]string, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.OrderID)
	}
	itemCursor, err := db.OrderItemsCollection.Find(ctx, bson.M{"orderid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer itemCursor.Close(ctx)

	var items []models.OrderItem
	if err := itemCursor.All(ctx, &items); err != nil {
		return nil, err
	}

	byOrder := make(map[string][]models.OrderItem, len(list))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range list {
		list[i].Items = byOrder[list[i].OrderID]
		if list[i].Items == nil {
			list[i].Items = []models.OrderItem{}
		}
	}
	return list, nil
}

func getOrder(ctx context.Context, filter bson.M) (models.Order, error) {
	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, filter).Decode(&order); err != nil {
		return order, err
	}

	cursor, err := db.OrderItemsCollection.Find(ctx, bson.M{"orderid": order.OrderID})
	if err != nil {
		return order, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &order.Items); err != nil {
		return order, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return order, nil
}

// deleteOrder removes the header and its item rows. Mongo has no
// referential cascade, so the item cleanup happens here.
func deleteOrder(ctx context.Context, orderID string) (bool, error) {
	res, err := db.OrdersCollection.DeleteOne(ctx, bson.M{"orderid": orderID})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	if _, err := db.OrderItemsCollection.DeleteMany(ctx, bson.M{"orderid": orderID}); err != nil {
		return true, err
	}
	return true, nil
}

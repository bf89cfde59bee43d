package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sartor/db"
	"sartor/models"
	"sartor/orderfeed"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// API bundles the order handlers with the admin event feed.
type API struct {
	Feed *orderfeed.Hub
}

func NewAPI(feed *orderfeed.Hub) *API {
	return &API{Feed: feed}
}

// GetOrders returns all orders newest-first, filtered by
// ?search= and ?status= for the admin list.
func (a *API) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := listOrders(ctx)
	if err != nil {
		log.Println("GetOrders list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	q := r.URL.Query()
	list = FilterOrders(list, q.Get("search"), q.Get("status"))
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CreateOrder handles both customer checkout and the admin order form.
func (a *API) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Println("CreateOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if order.CustomerName == "" || order.CustomerPhone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Customer name and phone are required")
		return
	}
	if len(order.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Order must have at least one item")
		return
	}
	for _, it := range order.Items {
		if it.ProductName == "" || it.Quantity < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Each item needs a product name and a quantity of at least 1")
			return
		}
	}

	if err := insertOrder(ctx, &order); err != nil {
		log.Println("CreateOrder insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	a.Feed.Publish(models.OrderEvent{
		Type:        "created",
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// TrackOrder is the public status lookup by order number.
func (a *API) TrackOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := getOrder(ctx, bson.M{"order_number": ps.ByName("ordernumber")})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("TrackOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"order":    order,
		"progress": Progress(order.Status),
	})
}

// UpdateStatus sets an order's status. Any known status may follow any
// other; the back office corrects mistakes with the same setter.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if !IsKnown(payload.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	orderID := ps.ByName("orderid")
	var order models.Order
	err := db.OrdersCollection.FindOneAndUpdate(
		ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"status": payload.Status, "updated_at": time.Now()}},
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("UpdateStatus error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	a.Feed.Publish(models.OrderEvent{
		Type:        "status",
		OrderID:     orderID,
		OrderNumber: order.OrderNumber,
		Status:      payload.Status,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}

// DeleteOrder removes an order and its items.
func (a *API) DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	found, err := deleteOrder(ctx, ps.ByName("orderid"))
	if err != nil {
		log.Println("DeleteOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

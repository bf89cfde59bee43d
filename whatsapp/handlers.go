package whatsapp

import (
	"context"
	"log"
	"net/http"
	"time"

	"sartor/cart"
	"sartor/db"
	"sartor/models"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// API serves the deep-link endpoints. The cart manager is needed to
// render checkout messages.
type API struct {
	Carts *cart.Manager
}

func NewAPI(carts *cart.Manager) *API {
	return &API{Carts: carts}
}

// ProductLink returns the inquiry deep link for one product.
func (a *API) ProductLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": ps.ByName("productid")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("ProductLink FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"link": Link(Number(), InquiryMessage(product)),
	})
}

// CheckoutLink renders the device's cart into an order deep link.
func (a *API) CheckoutLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := r.Header.Get("X-Device-ID")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Device-ID header")
		return
	}

	c := a.Carts.Cart(id)
	lines := c.Lines()
	if len(lines) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"link": Link(Number(), CheckoutMessage(lines, c.TotalPrice())),
	})
}

// CheckoutQR encodes the checkout deep link as a PNG for walk-up
// customers to scan.
func (a *API) CheckoutQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := r.Header.Get("X-Device-ID")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Device-ID header")
		return
	}

	c := a.Carts.Cart(id)
	lines := c.Lines()
	if len(lines) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	png, err := qrcode.Encode(Link(Number(), CheckoutMessage(lines, c.TotalPrice())), qrcode.Medium, 256)
	if err != nil {
		log.Println("CheckoutQR encode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		log.Println("CheckoutQR write error:", err)
	}
}

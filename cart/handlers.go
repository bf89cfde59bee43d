package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"sartor/models"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
)

// deviceID pulls the storefront-issued device identifier; every cart
// route requires it.
func deviceID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get("X-Device-ID")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Device-ID header")
	}
	return id
}

func cartPayload(c *Cart) utils.M {
	lines := c.Lines()
	return utils.M{
		"items":       lines,
		"total_items": c.TotalItems(),
		"total_price": c.TotalPrice(),
	}
}

func (m *Manager) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := deviceID(w, r)
	if id == "" {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(m.Cart(id)))
}

func (m *Manager) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := deviceID(w, r)
	if id == "" {
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if item.ProductID == "" || item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}

	c := m.Cart(id)
	c.Add(item)
	utils.RespondWithJSON(w, http.StatusCreated, cartPayload(c))
}

func (m *Manager) UpdateCartItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := deviceID(w, r)
	if id == "" {
		return
	}

	var payload struct {
		ProductID string `json:"productid"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateCartItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	c := m.Cart(id)
	if !c.UpdateQuantity(payload.ProductID, payload.Size, payload.Quantity) {
		utils.RespondWithError(w, http.StatusNotFound, "Cart line not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

func (m *Manager) RemoveCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := deviceID(w, r)
	if id == "" {
		return
	}

	c := m.Cart(id)
	if !c.Remove(ps.ByName("productid"), r.URL.Query().Get("size")) {
		utils.RespondWithError(w, http.StatusNotFound, "Cart line not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

func (m *Manager) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := deviceID(w, r)
	if id == "" {
		return
	}
	c := m.Cart(id)
	c.Clear()
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRoutesRequireDeviceID(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	m.GetCart(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Missing X-Device-ID header"}`, w.Body.String())
}

func TestAddToCartRejectsBadJSON(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader("{"))
	r.Header.Set("X-Device-ID", "dev1")
	m.AddToCart(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, w.Body.String())
}

func TestAddToCartReturnsCartPayload(t *testing.T) {
	m := NewManager(NewMemoryStorage())

	w := httptest.NewRecorder()
	body := `{"productid":"p1","name":"Navy Polo Shirt","price":"Rs. 1,500","size":"M"}`
	r := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	r.Header.Set("X-Device-ID", "dev1")
	m.AddToCart(w, r, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var payload struct {
		TotalItems int `json:"total_items"`
		TotalPrice int `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.TotalItems)
	assert.Equal(t, 1500, payload.TotalPrice)
}

package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"sartor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkShapeAndEncoding(t *testing.T) {
	link := Link("94771234567", "Hi! I'd like 2 x Navy Polo & a belt")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/94771234567?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi! I'd like 2 x Navy Polo & a belt", u.Query().Get("text"))
}

func TestInquiryMessage(t *testing.T) {
	p := models.Product{Name: "Navy Polo Shirt", Price: "Rs. 1,500 - 3,000"}
	msg := InquiryMessage(p)
	assert.Contains(t, msg, "Navy Polo Shirt")
	assert.Contains(t, msg, "Rs. 1,500 - 3,000")
	assert.Contains(t, msg, "Is it available?")

	p.OutOfStock = true
	assert.Contains(t, InquiryMessage(p), "back in stock")
}

func TestCheckoutMessageListsLinesAndTotal(t *testing.T) {
	lines := []models.CartItem{
		{Name: "Navy Polo Shirt", Size: "M", Quantity: 2},
		{Name: "Leather Belt", Quantity: 1},
	}
	msg := CheckoutMessage(lines, 3000)

	assert.Contains(t, msg, "- Navy Polo Shirt (size M) x2")
	assert.Contains(t, msg, "- Leather Belt x1")
	assert.Contains(t, msg, "Total: Rs. 3000")
}

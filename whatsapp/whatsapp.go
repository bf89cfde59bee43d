// Package whatsapp builds the wa.me deep links that serve as the
// store's order-submission channel. Orders are confirmed manually over
// chat; no payment flow exists.
package whatsapp

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"sartor/models"
)

// Number returns the store's WhatsApp number in international format
// without the plus sign, as wa.me expects.
func Number() string {
	n := strings.TrimPrefix(os.Getenv("WHATSAPP_NUMBER"), "+")
	if n == "" {
		n = "94771234567"
	}
	return n
}

// Link wraps a message into a wa.me deep link.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// InquiryMessage is the prefilled text for a single-product inquiry.
func InquiryMessage(p models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I'm interested in %s (%s).", p.Name, p.Price)
	if p.OutOfStock {
		b.WriteString(" When will it be back in stock?")
	} else {
		b.WriteString(" Is it available?")
	}
	return b.String()
}

// CheckoutMessage renders the cart into the prefilled order text.
func CheckoutMessage(lines []models.CartItem, total int) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to place an order:\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s", l.Name)
		if l.Size != "" {
			fmt.Fprintf(&b, " (size %s)", l.Size)
		}
		fmt.Fprintf(&b, " x%d\n", l.Quantity)
	}
	fmt.Fprintf(&b, "Total: Rs. %d", total)
	return b.String()
}

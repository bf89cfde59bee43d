package orders

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func trackingURL(orderNumber string) string {
	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + "/track/" + orderNumber
}

// Invoice renders a PDF receipt for an order, with a QR code pointing
// at the public tracking page.
func (a *API) Invoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := getOrder(ctx, bson.M{"orderid": ps.ByName("orderid")})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("Invoice fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}

	qrPNG, err := qrcode.Encode(trackingURL(order.OrderNumber), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Sartor Menswear")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderNumber))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s", order.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", order.CustomerPhone))
	pdf.Ln(6)
	if order.CustomerAddress != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Deliver to: %s", order.CustomerAddress))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2 Jan 2006")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Item", "B", 0, "", false, 0, "")
	pdf.CellFormat(20, 8, "Size", "B", 0, "", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		pdf.CellFormat(80, 8, it.ProductName, "", 0, "", false, 0, "")
		pdf.CellFormat(20, 8, it.Size, "", 0, "", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("Rs. %d", it.Price*it.Quantity), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 10, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("Rs. %d", order.TotalAmount), "T", 1, "R", false, 0, "")

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("tracking-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("tracking-qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", order.OrderNumber))
	if err := pdf.Output(w); err != nil {
		log.Println("Invoice output error:", err)
	}
}

package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sartor/db"
	"sartor/models"
	"sartor/pricing"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// normalizePrice parses the display price into numeric bounds, swaps
// an inverted pair and rewrites the canonical display string. Reports
// whether the price parsed; zero bounds are stored either way.
func normalizePrice(p *models.Product) bool {
	min, max, ok := pricing.ParseRange(p.Price)
	if min > max {
		min, max = max, min
	}
	p.PriceMin = min
	p.PriceMax = max
	p.Price = pricing.FormatRange(min, max)
	return ok
}

// GetProducts returns the catalog newest-first, with the storefront
// filter applied from query params (?search=&category=&price=).
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading products")
		return
	}

	q := r.URL.Query()
	products = Filter(products, Criteria{
		Query:    q.Get("search"),
		Category: q.Get("category"),
		Bracket:  q.Get("price"),
	})

	if products == nil {
		products = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": ps.ByName("productid")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct validates and inserts a product. The price arrives in
// display form; a string with no numeric content is stored with zero
// bounds rather than rejected, so the miss is logged loudly instead.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Println("CreateProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if product.Name == "" || product.Category == "" || product.Price == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, category and price are required")
		return
	}

	raw := product.Price
	if !normalizePrice(&product) {
		log.Printf("CreateProduct: price %q did not parse, storing zero bounds", raw)
	}

	product.ProductID = "p" + utils.GenerateID(14)
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct overwrites the mutable fields of a product.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Println("EditProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if product.Name == "" || product.Category == "" || product.Price == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, category and price are required")
		return
	}

	raw := product.Price
	if !normalizePrice(&product) {
		log.Printf("EditProduct: price %q did not parse, storing zero bounds", raw)
	}

	update := bson.M{"$set": bson.M{
		"name":            product.Name,
		"category":        product.Category,
		"image":           product.Image,
		"price":           product.Price,
		"price_min":       product.PriceMin,
		"price_max":       product.PriceMax,
		"description":     product.Description,
		"is_out_of_stock": product.OutOfStock,
		"is_new_arrival":  product.NewArrival,
		"has_offer":       product.HasOffer,
		"offer_text":      product.OfferText,
		"sizes":           product.Sizes,
		"updated_at":      time.Now(),
	}}

	res, err := db.ProductsCollection.UpdateOne(ctx, bson.M{"productid": productID}, update)
	if err != nil {
		log.Println("EditProduct UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProduct removes a product by id. Confirmation is a UI concern;
// none is enforced here.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("productid")})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

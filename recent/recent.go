// Package recent tracks the products a device viewed last, capped at
// 12 entries, most recent first, deduplicated by product id. The list
// lives in Redis only; losing it costs nothing.
package recent

import (
	"context"
	"log"
	"net/http"
	"time"

	"sartor/db"
	"sartor/globals"
	"sartor/models"
	"sartor/rdx"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const maxEntries = 12

func key(deviceID string) string {
	return "recent:" + deviceID
}

// RecordView moves a product to the front of the device's list.
func RecordView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	deviceID := r.Header.Get("X-Device-ID")
	if deviceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Device-ID header")
		return
	}
	productID := ps.ByName("productid")

	pipe := rdx.Conn.TxPipeline()
	pipe.LRem(globals.Ctx, key(deviceID), 0, productID)
	pipe.LPush(globals.Ctx, key(deviceID), productID)
	pipe.LTrim(globals.Ctx, key(deviceID), 0, maxEntries-1)
	if _, err := pipe.Exec(globals.Ctx); err != nil {
		// A lost view record is not worth failing the request over.
		log.Println("RecordView redis error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// GetRecent returns the device's recently viewed products, joined back
// to live catalog records. Products deleted since viewing drop out.
func GetRecent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	deviceID := r.Header.Get("X-Device-ID")
	if deviceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing X-Device-ID header")
		return
	}

	ids, err := rdx.Conn.LRange(globals.Ctx, key(deviceID), 0, maxEntries-1).Result()
	if err != nil {
		log.Println("GetRecent redis error:", err)
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}
	if len(ids) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		log.Println("GetRecent Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetRecent cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading products")
		return
	}

	// restore most-recent-first order
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, ordered)
}

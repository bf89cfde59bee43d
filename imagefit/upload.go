package imagefit

import (
	"context"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sartor/db"
	"sartor/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var uploadDir = "./static/productpic"

func publicURL(p string) string {
	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + path.Clean("/"+filepath.ToSlash(p))
}

// UploadProductImage accepts a multipart photo with angle/scale form
// fields, applies the square transform, stores the JPEG and points the
// product's image field at it. On any failure the product keeps its
// previous image; the admin re-triggers the upload manually.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	angle, _ := strconv.ParseFloat(r.FormValue("angle"), 64)
	scale, err := strconv.ParseFloat(r.FormValue("scale"), 64)
	if err != nil {
		scale = 1
	}

	src, err := Decode(file)
	if err != nil {
		log.Println("UploadProductImage decode error:", err)
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Unsupported or corrupt image")
		return
	}

	out := Transform(src, angle, scale)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Println("UploadProductImage mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	fileName := productID + "-" + utils.GetUUID() + ".jpg"
	savePath := filepath.Join(uploadDir, fileName)
	if err := imaging.Save(out, savePath, imaging.JPEGQuality(jpegQuality)); err != nil {
		log.Println("UploadProductImage save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	imageURL := publicURL("static/productpic/" + fileName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	_, err = db.ProductsCollection.UpdateOne(
		ctx,
		bson.M{"productid": productID},
		bson.M{"$set": bson.M{"image": imageURL, "updated_at": time.Now()}},
	)
	if err != nil {
		log.Println("UploadProductImage update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Image stored but product update failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"image": imageURL})
}

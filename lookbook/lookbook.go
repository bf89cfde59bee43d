// Package lookbook manages the storefront's mock Instagram feed. Posts
// are plain records curated by admins; there is no real Instagram
// integration.
package lookbook

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sartor/db"
	"sartor/models"
	"sartor/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.LookbookCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetPosts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve posts")
		return
	}
	defer cursor.Close(ctx)

	var posts []models.LookPost
	if err := cursor.All(ctx, &posts); err != nil {
		log.Println("GetPosts cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error reading posts")
		return
	}
	if posts == nil {
		posts = []models.LookPost{}
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.LookPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Println("CreatePost decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if post.Image == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	post.PostID = "lk" + utils.GenerateID(12)
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	if _, err := db.LookbookCollection.InsertOne(ctx, post); err != nil {
		log.Println("CreatePost InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, post)
}

func EditPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.LookPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Println("EditPost decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if post.Image == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	update := bson.M{"$set": bson.M{
		"image":      post.Image,
		"caption":    post.Caption,
		"likes":      post.Likes,
		"updated_at": time.Now(),
	}}
	res, err := db.LookbookCollection.UpdateOne(ctx, bson.M{"postid": ps.ByName("postid")}, update)
	if err != nil {
		log.Println("EditPost UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.LookbookCollection.DeleteOne(ctx, bson.M{"postid": ps.ByName("postid")})
	if err != nil {
		log.Println("DeletePost DeleteOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection   *mongo.Collection
	OrdersCollection     *mongo.Collection
	OrderItemsCollection *mongo.Collection
	UserCollection       *mongo.Collection
	LookbookCollection   *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductsCollection = Client.Database("sartordb").Collection("products")
	OrdersCollection = Client.Database("sartordb").Collection("orders")
	OrderItemsCollection = Client.Database("sartordb").Collection("order_items")
	UserCollection = Client.Database("sartordb").Collection("users")
	LookbookCollection = Client.Database("sartordb").Collection("lookbook")
}

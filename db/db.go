package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	ProductCollection      *mongo.Collection
	CategoryCollection     *mongo.Collection
	BlogCategoryCollection *mongo.Collection
	BrandCollection        *mongo.Collection
	ColorCollection        *mongo.Collection
	BlogCollection         *mongo.Collection
	CouponCollection       *mongo.Collection
	CartCollection         *mongo.Collection
	OrderCollection        *mongo.Collection
	EnquiryCollection      *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "shopdb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database(dbName).Collection("users")
	ProductCollection = Client.Database(dbName).Collection("products")
	CategoryCollection = Client.Database(dbName).Collection("categories")
	BlogCategoryCollection = Client.Database(dbName).Collection("blogcategories")
	BrandCollection = Client.Database(dbName).Collection("brands")
	ColorCollection = Client.Database(dbName).Collection("colors")
	BlogCollection = Client.Database(dbName).Collection("blogs")
	CouponCollection = Client.Database(dbName).Collection("coupons")
	CartCollection = Client.Database(dbName).Collection("carts")
	OrderCollection = Client.Database(dbName).Collection("orders")
	EnquiryCollection = Client.Database(dbName).Collection("enquiries")
}

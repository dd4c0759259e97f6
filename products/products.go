package products

import (
	"context"
	"net/http"
	"time"

	"emporia/db"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Brand       string   `json:"brand"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Colors      []string `json:"color"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// CreateProduct adds a catalog product (admin only).
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input productInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:   utils.GenerateRandomString(16),
		Title:       input.Title,
		Slug:        utils.Slugify(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Brand:       input.Brand,
		Quantity:    input.Quantity,
		Colors:      input.Colors,
		Tags:        input.Tags,
		Images:      input.Images,
		Ratings:     []models.Rating{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ProductCollection.InsertOne(r.Context(), product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": id}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

var productSortFields = map[string]bool{
	"price": true, "createdAt": true, "sold": true, "totalRating": true, "title": true,
}

// GetProducts lists products with optional ?category= and ?brand= filters,
// pagination and sorting.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}
	if brand := r.URL.Query().Get("brand"); brand != "" {
		filter["brand"] = brand
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, productSortFields)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// UpdateProduct applies a partial update (admin only). A changed title
// re-derives the slug.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var input struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price" validate:"omitempty,gte=0"`
		Category    *string   `json:"category"`
		Brand       *string   `json:"brand"`
		Quantity    *int      `json:"quantity"`
		Colors      *[]string `json:"color"`
		Tags        *[]string `json:"tags"`
		Images      *[]string `json:"images"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
		set["slug"] = utils.Slugify(*input.Title)
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Brand != nil {
		set["brand"] = *input.Brand
	}
	if input.Quantity != nil {
		set["quantity"] = *input.Quantity
	}
	if input.Colors != nil {
		set["color"] = *input.Colors
	}
	if input.Tags != nil {
		set["tags"] = *input.Tags
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}

	var product models.Product
	err := db.ProductCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"productId": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	res, err := db.ProductCollection.DeleteOne(r.Context(), bson.M{"productId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

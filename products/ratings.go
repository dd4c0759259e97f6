package products

import (
	"net/http"
	"time"

	"emporia/db"
	"emporia/globals"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ratingInput struct {
	ProductID string `json:"productId" validate:"required"`
	Stars     int    `json:"star" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// RateProduct inserts or updates the caller's rating for a product and
// recomputes the product's totalRating from the full rating set.
func RateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input ratingInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}
	if !utils.ValidateID(input.ProductID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": input.ProductID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve product")
		return
	}

	ratings := UpsertRating(product.Ratings, models.Rating{
		UserID:   userID,
		Stars:    input.Stars,
		Comment:  input.Comment,
		PostedAt: time.Now(),
	})
	total := AverageStars(ratings)

	err = db.ProductCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"productId": input.ProductID},
		bson.M{"$set": bson.M{"ratings": ratings, "totalRating": total, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// UpsertRating overwrites the user's existing rating in place, or appends a
// new one. At most one rating per user survives.
func UpsertRating(ratings []models.Rating, r models.Rating) []models.Rating {
	for i := range ratings {
		if ratings[i].UserID == r.UserID {
			ratings[i].Stars = r.Stars
			ratings[i].Comment = r.Comment
			ratings[i].PostedAt = r.PostedAt
			return ratings
		}
	}
	return append(ratings, r)
}

// AverageStars is the half-up rounded mean of all stars; 0 for an empty set.
func AverageStars(ratings []models.Rating) int {
	stars := make([]int, 0, len(ratings))
	for _, r := range ratings {
		stars = append(stars, r.Stars)
	}
	return utils.RoundMean(stars)
}

package cart

import (
	"context"
	"net/http"
	"time"

	"emporia/db"
	"emporia/globals"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LineRequest is one requested cart entry. Price is deliberately absent:
// unit prices are read from the catalog at build time so a client cannot
// supply its own.
type LineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Count     int    `json:"count" validate:"required,min=1"`
	Color     string `json:"color"`
}

type buildCartInput struct {
	Cart []LineRequest `json:"cart" validate:"required,min=1,dive"`
}

// BuildCart prices the requested lines against the catalog and replaces
// any existing cart for the caller. At most one cart per user exists
// afterwards.
func BuildCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input buildCartInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	prices := make(map[string]float64, len(input.Cart))
	for _, line := range input.Cart {
		if _, seen := prices[line.ProductID]; seen {
			continue
		}
		var product models.Product
		err := db.ProductCollection.FindOne(ctx, bson.M{"productId": line.ProductID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found: "+line.ProductID)
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve product")
			return
		}
		prices[line.ProductID] = product.Price
	}

	lines, total := PriceLines(input.Cart, prices)

	// Replace any existing cart for this user.
	if _, err := db.CartCollection.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear existing cart")
		return
	}

	now := time.Now()
	newCart := models.Cart{
		CartID:    utils.GenerateRandomString(16),
		UserID:    userID,
		Lines:     lines,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.CartCollection.InsertOne(ctx, newCart); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, newCart)
}

// PriceLines resolves each requested line against the unit prices and
// accumulates the grand total.
func PriceLines(reqs []LineRequest, prices map[string]float64) ([]models.CartLine, float64) {
	lines := make([]models.CartLine, 0, len(reqs))
	total := 0.0
	for _, req := range reqs {
		price := prices[req.ProductID]
		lines = append(lines, models.CartLine{
			ProductID: req.ProductID,
			Quantity:  req.Count,
			Color:     req.Color,
			Price:     price,
		})
		total += price * float64(req.Count)
	}
	return lines, utils.Round2(total)
}

// GetCart returns the caller's cart, or an empty one.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var userCart models.Cart
	err := db.CartCollection.FindOne(r.Context(), bson.M{"userId": userID}).Decode(&userCart)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, models.Cart{UserID: userID, Lines: []models.CartLine{}})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, userCart)
}

// EmptyCart removes the caller's cart.
func EmptyCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := db.CartCollection.DeleteOne(r.Context(), bson.M{"userId": userID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to empty cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "emptied"})
}

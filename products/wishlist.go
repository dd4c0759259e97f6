package products

import (
	"net/http"
	"slices"
	"time"

	"emporia/db"
	"emporia/globals"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ToggleWishlist adds the product to the caller's wishlist, or removes it
// when already present.
func ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		ProductID string `json:"productId" validate:"required"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}
	if !utils.ValidateID(input.ProductID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := db.ProductCollection.FindOne(r.Context(), bson.M{"productId": input.ProductID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	op := bson.M{"$addToSet": bson.M{"wishlist": input.ProductID}}
	if slices.Contains(user.Wishlist, input.ProductID) {
		op = bson.M{"$pull": bson.M{"wishlist": input.ProductID}}
	}
	op["$set"] = bson.M{"updatedAt": time.Now()}

	err := db.UserCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"userid": userID},
		op,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

package users

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers lists all users (admin only).
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	users, err := utils.FindAndDecode[models.User](ctx, db.UserCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve users")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": id}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

type updateUserInput struct {
	FirstName string `json:"firstname" validate:"omitempty,min=1"`
	LastName  string `json:"lastname" validate:"omitempty,min=1"`
	Email     string `json:"email" validate:"omitempty,email"`
	Mobile    string `json:"mobile" validate:"omitempty,min=4"`
}

// UpdateUser updates the authenticated user's own profile.
func UpdateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input updateUserInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.FirstName != "" {
		set["firstname"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastname"] = input.LastName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Mobile != "" {
		set["mobile"] = input.Mobile
	}

	var user models.User
	err := db.UserCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"userid": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// DeleteUser removes a user (admin only).
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	res, err := db.UserCollection.DeleteOne(r.Context(), bson.M{"userid": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

func BlockUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setBlocked(w, r, ps.ByName("id"), true)
}

func UnblockUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setBlocked(w, r, ps.ByName("id"), false)
}

func setBlocked(w http.ResponseWriter, r *http.Request, id string, blocked bool) {
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user models.User
	err := db.UserCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"userid": id},
		bson.M{"$set": bson.M{"blocked": blocked, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetWishlist returns the products on the authenticated user's wishlist.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	filter := bson.M{"productId": bson.M{"$in": user.Wishlist}}
	if len(user.Wishlist) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}

	products, err := utils.FindAndDecode[models.Product](r.Context(), db.ProductCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve wishlist")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

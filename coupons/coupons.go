package coupons

import (
	"net/http"
	"time"

	"emporia/db"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type couponInput struct {
	Name     string    `json:"name" validate:"required"`
	Discount float64   `json:"discount" validate:"gte=0,lte=100"`
	Expiry   time.Time `json:"expiry" validate:"required"`
}

// CreateCoupon adds a coupon (admin only). Names are unique.
func CreateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input couponInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	err := db.CouponCollection.FindOne(r.Context(), bson.M{"name": input.Name}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Coupon already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	coupon := models.Coupon{
		CouponID:  utils.GenerateRandomString(16),
		Name:      input.Name,
		Discount:  input.Discount,
		Expiry:    input.Expiry,
		CreatedAt: time.Now(),
	}
	if _, err := db.CouponCollection.InsertOne(r.Context(), coupon); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create coupon")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, coupon)
}

func GetCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid coupon id")
		return
	}

	var coupon models.Coupon
	err := db.CouponCollection.FindOne(r.Context(), bson.M{"couponId": id}).Decode(&coupon)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Coupon not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, coupon)
}

func GetCoupons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	coupons, err := utils.FindAndDecode[models.Coupon](r.Context(), db.CouponCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve coupons")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, coupons)
}

func UpdateCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid coupon id")
		return
	}

	var input struct {
		Name     *string    `json:"name"`
		Discount *float64   `json:"discount" validate:"omitempty,gte=0,lte=100"`
		Expiry   *time.Time `json:"expiry"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	set := bson.M{}
	if input.Name != nil {
		// The name is the lookup key; renaming must not collide with
		// another coupon.
		err := db.CouponCollection.FindOne(r.Context(), bson.M{"name": *input.Name, "couponId": bson.M{"$ne": id}}).Err()
		if err == nil {
			utils.RespondWithError(w, http.StatusConflict, "Coupon already exists")
			return
		}
		if err != mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		set["name"] = *input.Name
	}
	if input.Discount != nil {
		set["discount"] = *input.Discount
	}
	if input.Expiry != nil {
		set["expiry"] = *input.Expiry
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	var coupon models.Coupon
	err := db.CouponCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"couponId": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&coupon)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Coupon not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, coupon)
}

func DeleteCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid coupon id")
		return
	}

	res, err := db.CouponCollection.DeleteOne(r.Context(), bson.M{"couponId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete coupon")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Coupon not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

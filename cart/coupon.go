package cart

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
)

type applyCouponInput struct {
	Coupon string `json:"coupon" validate:"required"`
}

// ApplyCoupon discounts the caller's cart total by the coupon's percentage
// and persists the discounted total onto the cart so checkout can read it.
//
// Coupon lookup is case-sensitive by name. Expiry is enforced only by the
// background sweep, not re-checked here: a coupon can still be applied in
// the window between its expiry and the next sweep tick.
func ApplyCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input applyCouponInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	var coupon models.Coupon
	err := db.CouponCollection.FindOne(r.Context(), bson.M{"name": input.Coupon}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invalid coupon")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up coupon")
		return
	}

	var userCart models.Cart
	err = db.CartCollection.FindOne(r.Context(), bson.M{"userId": userID}).Decode(&userCart)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusBadRequest, "cart empty")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	discounted := Discount(userCart.Total, coupon.Discount)

	_, err = db.CartCollection.UpdateOne(
		r.Context(),
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"totalAfterDiscount": discounted, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to apply coupon")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"totalAfterDiscount": discounted})
}

// Discount applies a percentage discount to a total, rounded to two decimal
// places half-up.
func Discount(total, percent float64) float64 {
	return utils.Round2(total - total*percent/100)
}

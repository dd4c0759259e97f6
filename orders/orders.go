package orders

import (
	"context"
	"log"
	"net/http"
	"slices"
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

var paymentMethods = []string{"cod", "card", "upi", "wallet"}

var orderStatuses = []string{
	models.OrderCreated,
	models.OrderProcessing,
	models.OrderShipped,
	models.OrderDelivered,
	models.OrderCancelled,
	models.OrderCashOnDelivery,
}

type placeOrderInput struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	ApplyDiscount bool   `json:"applyDiscount"`
}

// PlaceOrder converts the caller's priced cart into an order and adjusts
// per-product stock and sold counters.
//
// The order document is written first, then stock is adjusted with a single
// bulk write. The store gives no multi-document atomicity here; a crash
// between the two writes leaves the order placed with stock unadjusted.
// Stock sufficiency is not checked before decrementing - stock may go
// negative (oversell is permitted).
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input placeOrderInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}
	if !slices.Contains(paymentMethods, input.PaymentMethod) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported payment method")
		return
	}

	var userCart models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&userCart)
	if err == mongo.ErrNoDocuments || (err == nil && len(userCart.Lines) == 0) {
		utils.RespondWithError(w, http.StatusBadRequest, "cart empty")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	amount := SelectAmount(userCart, input.ApplyDiscount)

	status := models.OrderCreated
	payStatus := "Pending"
	if input.PaymentMethod == "cod" {
		status = models.OrderCashOnDelivery
		payStatus = models.OrderCashOnDelivery
	}

	now := time.Now()
	order := models.Order{
		OrderID: utils.GenerateRandomString(16),
		UserID:  userID,
		Lines:   append([]models.CartLine(nil), userCart.Lines...),
		Payment: models.PaymentRecord{
			ID:        utils.GetUUID(),
			Method:    input.PaymentMethod,
			Amount:    amount,
			Status:    payStatus,
			CreatedAt: now,
			Currency:  "usd",
		},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := adjustStock(ctx, order.Lines); err != nil {
		// Order is already placed; stock remains unadjusted for the
		// failed updates. Surface the failure rather than unwinding.
		log.Printf("PlaceOrder stock adjustment failed for order %s: %v", order.OrderID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Order placed but stock adjustment failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// SelectAmount picks the discounted total when requested and present,
// otherwise the plain total.
func SelectAmount(c models.Cart, applyDiscount bool) float64 {
	if applyDiscount && c.DiscountedTotal != nil {
		return *c.DiscountedTotal
	}
	return c.Total
}

// MergeLineAdjustments sums quantities per product across lines. Two lines
// for the same product in different colors draw from the same stock pool.
func MergeLineAdjustments(lines []models.CartLine) map[string]int {
	adj := make(map[string]int, len(lines))
	for _, line := range lines {
		adj[line.ProductID] += line.Quantity
	}
	return adj
}

// adjustStock applies {-count stock, +count sold} per product in one bulk
// write.
func adjustStock(ctx context.Context, lines []models.CartLine) error {
	adj := MergeLineAdjustments(lines)
	writes := make([]mongo.WriteModel, 0, len(adj))
	for productID, count := range adj {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"productId": productID}).
			SetUpdate(bson.M{"$inc": bson.M{"quantity": -count, "sold": count}}))
	}
	if len(writes) == 0 {
		return nil
	}
	_, err := db.ProductCollection.BulkWrite(ctx, writes)
	return err
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := utils.FindAndDecode[models.Order](r.Context(), db.OrderCollection,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetAllOrders lists every order (admin only).
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	orders, err := utils.FindAndDecode[models.Order](r.Context(), db.OrderCollection,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus sets an order's status (admin only).
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}
	if !ValidOrderStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	res, err := db.OrderCollection.UpdateOne(
		r.Context(),
		bson.M{"orderId": id},
		bson.M{"$set": bson.M{"orderStatus": input.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"orderId": id, "status": input.Status})
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	return slices.Contains(orderStatuses, s)
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	return slices.Contains(paymentMethods, m)
}

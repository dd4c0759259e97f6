package models

import "time"

// Order status values.
const (
	OrderCreated        = "Created"
	OrderProcessing     = "Processing"
	OrderShipped        = "Shipped"
	OrderDelivered      = "Delivered"
	OrderCancelled      = "Cancelled"
	OrderCashOnDelivery = "Cash on Delivery"
)

// PaymentRecord is stamped onto an order at checkout.
type PaymentRecord struct {
	ID        string    `json:"id" bson:"id"`
	Method    string    `json:"method" bson:"method"`
	Amount    float64   `json:"amount" bson:"amount"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created" bson:"created"`
	Currency  string    `json:"currency" bson:"currency"`
}

// Order snapshots the cart lines at checkout time; later catalog price
// changes never alter a placed order.
type Order struct {
	OrderID   string        `json:"orderId" bson:"orderId"`
	UserID    string        `json:"userId" bson:"userId"`
	Lines     []CartLine    `json:"products" bson:"products"`
	Payment   PaymentRecord `json:"paymentIntent" bson:"paymentIntent"`
	Status    string        `json:"orderStatus" bson:"orderStatus"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

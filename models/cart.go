package models

import "time"

// CartLine is one (product, quantity, color) entry in a cart or order.
// Price is the unit price resolved from the catalog at build time, never
// taken from the client.
type CartLine struct {
	ProductID string  `json:"productId" bson:"productId"`
	Quantity  int     `json:"count" bson:"count"`
	Color     string  `json:"color" bson:"color"`
	Price     float64 `json:"price" bson:"price"`
}

// Cart holds a user's current cart. At most one cart exists per user;
// building a new cart supersedes the old one.
type Cart struct {
	CartID          string     `json:"cartId" bson:"cartId"`
	UserID          string     `json:"userId" bson:"userId"`
	Lines           []CartLine `json:"products" bson:"products"`
	Total           float64    `json:"cartTotal" bson:"cartTotal"`
	DiscountedTotal *float64   `json:"totalAfterDiscount,omitempty" bson:"totalAfterDiscount,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt" bson:"updatedAt"`
}

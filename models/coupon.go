package models

import "time"

// Coupon is an administrator-created discount. Name is the unique,
// case-sensitive lookup key. Expired coupons are removed by the
// background sweep in the coupons package.
type Coupon struct {
	CouponID  string    `json:"couponId" bson:"couponId"`
	Name      string    `json:"name" bson:"name"`
	Discount  float64   `json:"discount" bson:"discount"` // percent, 0-100
	Expiry    time.Time `json:"expiry" bson:"expiry"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

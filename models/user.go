package models

import "time"

// User is a customer or administrator account.
type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	FirstName     string    `json:"firstname" bson:"firstname"`
	LastName      string    `json:"lastname" bson:"lastname"`
	Email         string    `json:"email" bson:"email"`
	Mobile        string    `json:"mobile" bson:"mobile"`
	Password      string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role          []string  `json:"role" bson:"role"`
	Blocked       bool      `json:"blocked" bson:"blocked"`
	Wishlist      []string  `json:"wishlist" bson:"wishlist"` // product ids
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

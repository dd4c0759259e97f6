package models

import "time"

// Rating is one user's rating of a product. A user has at most one rating
// per product; a later submission overwrites the earlier one.
type Rating struct {
	UserID   string    `json:"postedBy" bson:"postedBy"`
	Stars    int       `json:"star" bson:"star"`
	Comment  string    `json:"comment" bson:"comment"`
	PostedAt time.Time `json:"postedAt" bson:"postedAt"`
}

type Product struct {
	ProductID   string    `json:"productId" bson:"productId"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Brand       string    `json:"brand" bson:"brand"`
	Quantity    int       `json:"quantity" bson:"quantity"` // stock on hand; may go negative, see orders
	Sold        int       `json:"sold" bson:"sold"`
	Colors      []string  `json:"color" bson:"color"`
	Tags        []string  `json:"tags" bson:"tags"`
	Images      []string  `json:"images" bson:"images"`
	Ratings     []Rating  `json:"ratings" bson:"ratings"`
	TotalRating int       `json:"totalRating" bson:"totalRating"` // rounded mean of Ratings
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

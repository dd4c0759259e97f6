package models

import "time"

// Term is a simple titled document shared by the taxonomy collections:
// product categories, blog categories, brands and colors.
type Term struct {
	TermID    string    `json:"id" bson:"termId"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

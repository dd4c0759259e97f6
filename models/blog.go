package models

import "time"

// Blog post. Likes and Dislikes are per-user id sets; whether the current
// caller has reacted is computed per request, never stored as a flag.
type Blog struct {
	BlogID      string    `json:"blogId" bson:"blogId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Author      string    `json:"author" bson:"author"`
	NumViews    int       `json:"numViews" bson:"numViews"`
	Likes       []string  `json:"likes" bson:"likes"`
	Dislikes    []string  `json:"dislikes" bson:"dislikes"`
	Images      []string  `json:"images" bson:"images"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BlogView is a Blog plus the caller's reaction state.
type BlogView struct {
	Blog       `bson:",inline"`
	IsLiked    bool `json:"isLiked" bson:"-"`
	IsDisliked bool `json:"isDisliked" bson:"-"`
}

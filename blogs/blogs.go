package blogs

import (
	"context"
	"net/http"
	"slices"
	"time"

	"emporia/db"
	"emporia/globals"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blogInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
}

// CreateBlog adds a post (admin only).
func CreateBlog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input blogInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	now := time.Now()
	blog := models.Blog{
		BlogID:      utils.GenerateRandomString(16),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Author:      userID,
		Likes:       []string{},
		Dislikes:    []string{},
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.BlogCollection.InsertOne(r.Context(), blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create blog")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, blog)
}

// GetBlog returns a post and increments its view counter. The caller's
// like state is derived from set membership per request, never stored as a
// shared flag.
func GetBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var blog models.Blog
	err := db.BlogCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"blogId": id},
		bson.M{"$inc": bson.M{"numViews": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	utils.RespondWithJSON(w, http.StatusOK, viewFor(blog, userID))
}

func GetBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	blogs, err := utils.FindAndDecode[models.Blog](ctx, db.BlogCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve blogs")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	views := make([]models.BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, viewFor(b, userID))
	}

	utils.RespondWithJSON(w, http.StatusOK, views)
}

func UpdateBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	var input struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Category    *string   `json:"category"`
		Images      *[]string `json:"images"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}

	var blog models.Blog
	err := db.BlogCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"blogId": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, blog)
}

func DeleteBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid blog id")
		return
	}

	res, err := db.BlogCollection.DeleteOne(r.Context(), bson.M{"blogId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete blog")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

func viewFor(b models.Blog, userID string) models.BlogView {
	return models.BlogView{
		Blog:       b,
		IsLiked:    userID != "" && slices.Contains(b.Likes, userID),
		IsDisliked: userID != "" && slices.Contains(b.Dislikes, userID),
	}
}

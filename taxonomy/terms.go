// Package taxonomy serves the four titled lookup collections: product
// categories, blog categories, brands and colors. They share one document
// shape, so the handlers are built from a common set keyed by collection.
package taxonomy

import (
	"net/http"
	"time"

	"emporia/db"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type termInput struct {
	Title string `json:"title" validate:"required"`
}

type termHandlers struct {
	coll func() *mongo.Collection
	kind string
}

func (h termHandlers) create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input termInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	now := time.Now()
	term := models.Term{
		TermID:    utils.GenerateRandomString(16),
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := h.coll().InsertOne(r.Context(), term); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create "+h.kind)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, term)
}

func (h termHandlers) get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+h.kind+" id")
		return
	}

	var term models.Term
	if err := h.coll().FindOne(r.Context(), bson.M{"termId": id}).Decode(&term); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, h.kind+" not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, term)
}

func (h termHandlers) getAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	terms, err := utils.FindAndDecode[models.Term](r.Context(), h.coll(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve "+h.kind+"s")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, terms)
}

func (h termHandlers) update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+h.kind+" id")
		return
	}

	var input termInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	var term models.Term
	err := h.coll().FindOneAndUpdate(
		r.Context(),
		bson.M{"termId": id},
		bson.M{"$set": bson.M{"title": input.Title, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&term)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, h.kind+" not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, term)
}

func (h termHandlers) delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+h.kind+" id")
		return
	}

	res, err := h.coll().DeleteOne(r.Context(), bson.M{"termId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete "+h.kind)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, h.kind+" not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

// Collection lookups are deferred so the package can be imported before db
// init has run in tests.
var (
	Categories     = termHandlers{coll: func() *mongo.Collection { return db.CategoryCollection }, kind: "category"}
	BlogCategories = termHandlers{coll: func() *mongo.Collection { return db.BlogCategoryCollection }, kind: "blog category"}
	Brands         = termHandlers{coll: func() *mongo.Collection { return db.BrandCollection }, kind: "brand"}
	Colors         = termHandlers{coll: func() *mongo.Collection { return db.ColorCollection }, kind: "color"}
)

// Exported handler sets, one per collection.
var (
	CreateCategory = Categories.create
	GetCategory    = Categories.get
	GetCategories  = Categories.getAll
	UpdateCategory = Categories.update
	DeleteCategory = Categories.delete

	CreateBlogCategory = BlogCategories.create
	GetBlogCategory    = BlogCategories.get
	GetBlogCategories  = BlogCategories.getAll
	UpdateBlogCategory = BlogCategories.update
	DeleteBlogCategory = BlogCategories.delete

	CreateBrand = Brands.create
	GetBrand    = Brands.get
	GetBrands   = Brands.getAll
	UpdateBrand = Brands.update
	DeleteBrand = Brands.delete

	CreateColor = Colors.create
	GetColor    = Colors.get
	GetColors   = Colors.getAll
	UpdateColor = Colors.update
	DeleteColor = Colors.delete
)

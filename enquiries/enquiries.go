package enquiries

import (
	"net/http"
	"slices"
	"time"

	"emporia/db"
	"emporia/models"
	"emporia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var enquiryStatuses = []string{
	models.EnquirySubmitted,
	models.EnquiryContacted,
	models.EnquiryInProgress,
	models.EnquiryResolved,
}

type enquiryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

// CreateEnquiry records a customer enquiry; no auth required.
func CreateEnquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input enquiryInput
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}

	now := time.Now()
	enq := models.Enquiry{
		EnquiryID: utils.GenerateRandomString(16),
		Name:      input.Name,
		Email:     input.Email,
		Mobile:    input.Mobile,
		Comment:   input.Comment,
		Status:    models.EnquirySubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.EnquiryCollection.InsertOne(r.Context(), enq); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create enquiry")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, enq)
}

func GetEnquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enquiry id")
		return
	}

	var enq models.Enquiry
	if err := db.EnquiryCollection.FindOne(r.Context(), bson.M{"enquiryId": id}).Decode(&enq); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Enquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, enq)
}

func GetEnquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	enqs, err := utils.FindAndDecode[models.Enquiry](r.Context(), db.EnquiryCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve enquiries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, enqs)
}

// UpdateEnquiry sets the handling status (admin only).
func UpdateEnquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enquiry id")
		return
	}

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := utils.BindAndValidate(w, r, &input); err != nil {
		return
	}
	if !ValidStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown enquiry status")
		return
	}

	var enq models.Enquiry
	err := db.EnquiryCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"enquiryId": id},
		bson.M{"$set": bson.M{"status": input.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&enq)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Enquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, enq)
}

func DeleteEnquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if !utils.ValidateID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enquiry id")
		return
	}

	res, err := db.EnquiryCollection.DeleteOne(r.Context(), bson.M{"enquiryId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete enquiry")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Enquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": id})
}

// ValidStatus reports whether s is a known enquiry status.
func ValidStatus(s string) bool {
	return slices.Contains(enquiryStatuses, s)
}

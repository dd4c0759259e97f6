package models

import "time"

// Enquiry status values.
const (
	EnquirySubmitted  = "Submitted"
	EnquiryContacted  = "Contacted"
	EnquiryInProgress = "In Progress"
	EnquiryResolved   = "Resolved"
)

type Enquiry struct {
	EnquiryID string    `json:"enquiryId" bson:"enquiryId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Mobile    string    `json:"mobile" bson:"mobile"`
	Comment   string    `json:"comment" bson:"comment"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enquiry sources.
const (
	SourceContact = "contact"
	SourceEnquiry = "enquiry"
)

// Enquiry is a message left through the contact or tour enquiry form.
type Enquiry struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439013"`
	Name         string              `json:"name" bson:"name" example:"Ravi Kumar"`
	Email        string              `json:"email" bson:"email" example:"ravi@example.com"`
	Phone        string              `json:"phone" bson:"phone" example:"+91 98765 43210"`
	Message      string              `json:"message" bson:"message" example:"Is the June batch still open?"`
	SubPackageID *primitive.ObjectID `json:"subPackageId,omitempty" bson:"subPackageId,omitempty" example:"507f1f77bcf86cd799439012"`
	Source       string              `json:"source" bson:"source" example:"enquiry"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateEnquiryRequest is the payload of both public forms.
type CreateEnquiryRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100" example:"Ravi Kumar"`
	Email        string `json:"email" binding:"required,email" example:"ravi@example.com"`
	Phone        string `json:"phone" binding:"omitempty,max=30" example:"+91 98765 43210"`
	Message      string `json:"message" binding:"required,min=1,max=2000" example:"Is the June batch still open?"`
	SubPackageID string `json:"subPackageId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439012"`
}

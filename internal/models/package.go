// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a top-level catalog category such as "Spiritual Tours".
type Package struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Category    string               `json:"category" bson:"category" example:"Spiritual Tours"`
	Description string               `json:"description" bson:"description" example:"Pilgrimages across the Himalayas"`
	SubPackages []primitive.ObjectID `json:"subPackages" bson:"subPackages"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreatePackageRequest is the payload for creating a package.
type CreatePackageRequest struct {
	Category    string `json:"category" binding:"required,min=1,max=120" example:"Spiritual Tours"`
	Description string `json:"description" binding:"required,min=1" example:"Pilgrimages across the Himalayas"`
}

// UpdatePackageRequest is the payload for updating a package.
// Fields that are nil or empty leave the stored value untouched.
type UpdatePackageRequest struct {
	Category    *string `json:"category" binding:"omitempty,max=120" example:"Adventure Tours"`
	Description *string `json:"description" example:"Treks and rafting"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParentKind tells which collection a sub-package's parent lives in.
type ParentKind string

const (
	// ParentPackage means the parent is a top-level Package.
	ParentPackage ParentKind = "package"
	// ParentSubPackage means the parent is another SubPackage.
	ParentSubPackage ParentKind = "subpackage"
)

// ParentRef is the resolved parent of a sub-package.
type ParentRef struct {
	Kind ParentKind
	ID   primitive.ObjectID
}

// SubPackage is a bookable tour item nested under a Package or another SubPackage.
type SubPackage struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Name           string               `json:"name" bson:"name" example:"Kedarnath Yatra"`
	Description    string               `json:"description" bson:"description" example:"Five day pilgrimage"`
	Price          *float64             `json:"price" bson:"price" example:"15000"` // nil serialises as null
	Duration       string               `json:"duration" bson:"duration" example:"5 Days / 4 Nights"`
	PackageID      primitive.ObjectID   `json:"packageId" bson:"packageId" example:"507f1f77bcf86cd799439011"`
	ImageURL       string               `json:"imageUrl" bson:"imageUrl" example:"https://cdn.example.com/subpackages/main.jpg"`
	ImagePublicID  string               `json:"-" bson:"imagePublicId"`
	IsDealOfTheDay bool                 `json:"isDealOfTheDay" bson:"isDealOfTheDay" example:"false"`
	Introduction   string               `json:"introduction" bson:"introduction"`
	TourPlan       string               `json:"tourPlan" bson:"tourPlan"`
	IncludeExclude string               `json:"includeExclude" bson:"includeExclude"`
	GalleryImages  []GalleryImage       `json:"galleryImages" bson:"galleryImages"`
	PricingDetails []PricingDetail      `json:"pricingDetails" bson:"pricingDetails"`
	SubPackages    []primitive.ObjectID `json:"subPackages" bson:"subPackages"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// GalleryImage is one entry of a sub-package gallery.
type GalleryImage struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	URL      string             `json:"url" bson:"url" example:"https://cdn.example.com/subpackages/gallery-1.jpg"`
	PublicID string             `json:"publicId,omitempty" bson:"publicId,omitempty"`
}

// PricingDetail is one row of a sub-package price table.
type PricingDetail struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	NoOfPax    int                `json:"noOfPax" bson:"noOfPax" example:"2"`
	Cab        string             `json:"cab" bson:"cab" example:"Sedan"`
	CostPerPax float64            `json:"costPerPax" bson:"costPerPax" example:"5000"`
}

// PricingDetailInput is a pricing row as submitted by a client.
type PricingDetailInput struct {
	NoOfPax    int     `json:"noOfPax" example:"2"`
	Cab        string  `json:"cab" example:"Sedan"`
	CostPerPax float64 `json:"costPerPax" example:"5000"`
}

// SubPackageRequest carries the body fields of a create or update call.
// It binds from multipart forms as well as JSON bodies.
type SubPackageRequest struct {
	Name           OptionalString    `form:"name" json:"name" swaggertype:"string"`
	Description    OptionalString    `form:"description" json:"description" swaggertype:"string"`
	Price          OptionalFloat     `form:"price" json:"price" swaggertype:"number"`
	Duration       OptionalString    `form:"duration" json:"duration" swaggertype:"string"`
	PackageID      OptionalString    `form:"packageId" json:"packageId" swaggertype:"string"`
	IsDealOfTheDay OptionalBool      `form:"isDealOfTheDay" json:"isDealOfTheDay" swaggertype:"boolean"`
	Introduction   OptionalString    `form:"introduction" json:"introduction" swaggertype:"string"`
	TourPlan       OptionalString    `form:"tourPlan" json:"tourPlan" swaggertype:"string"`
	IncludeExclude OptionalString    `form:"includeExclude" json:"includeExclude" swaggertype:"string"`
	PricingDetails PricingDetailList `form:"pricingDetails" json:"pricingDetails"`
	GalleryImages  Presence          `form:"-" json:"galleryImages" swaggerignore:"true"` // multipart presence is set by the handler
}

// Upload is a file received from a client, ready to be sent to the media store.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NewSubPackage builds a fully defaulted sub-package from a create request.
// Every optional field gets its default so consumers never test for absence.
func NewSubPackage(req *SubPackageRequest, parent ParentRef) *SubPackage {
	sp := &SubPackage{
		Name:           req.Name.Value,
		Description:    req.Description.Value,
		Duration:       req.Duration.Value,
		PackageID:      parent.ID,
		Introduction:   req.Introduction.Value,
		TourPlan:       req.TourPlan.Value,
		IncludeExclude: req.IncludeExclude.Value,
		GalleryImages:  []GalleryImage{},
		PricingDetails: req.PricingDetails.Records(),
		SubPackages:    []primitive.ObjectID{},
	}
	if req.Price.Set {
		price := req.Price.Value
		sp.Price = &price
	}
	if req.IsDealOfTheDay.Set {
		sp.IsDealOfTheDay = req.IsDealOfTheDay.Value
	}
	return sp
}

// Normalize replaces nil collections with empty ones.
func (sp *SubPackage) Normalize() {
	if sp.GalleryImages == nil {
		sp.GalleryImages = []GalleryImage{}
	}
	if sp.PricingDetails == nil {
		sp.PricingDetails = []PricingDetail{}
	}
	if sp.SubPackages == nil {
		sp.SubPackages = []primitive.ObjectID{}
	}
}

// FindGalleryImage returns the gallery entry with the given id.
func (sp *SubPackage) FindGalleryImage(imageID primitive.ObjectID) (GalleryImage, bool) {
	for _, img := range sp.GalleryImages {
		if img.ID == imageID {
			return img, true
		}
	}
	return GalleryImage{}, false
}

// SubPackageUpdate is the resolved set of changes applied by the repository.
// Set holds replaced scalar fields; the slices are appended to the stored lists.
type SubPackageUpdate struct {
	Set                  map[string]interface{}
	AppendGalleryImages  []GalleryImage
	AppendPricingDetails []PricingDetail
}

// IsEmpty reports whether the update changes nothing.
func (u *SubPackageUpdate) IsEmpty() bool {
	return len(u.Set) == 0 && len(u.AppendGalleryImages) == 0 && len(u.AppendPricingDetails) == 0
}

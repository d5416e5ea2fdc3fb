// Package fixtures provides test data builders for unit and API tests.
package fixtures

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"tour-catalog/internal/models"

	"github.com/disintegration/imaging"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder for an employee without permissions.
func NewUser() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Role:      models.RoleEmployee,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

// AsAdmin gives the user the admin role.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

// WithPermissions grants the given catalog permissions.
func (b *UserBuilder) WithPermissions(perms ...models.Permission) *UserBuilder {
	for _, p := range perms {
		switch p {
		case models.PermCreatePackages:
			b.user.Permissions.CanCreatePackages = true
		case models.PermUpdatePackages:
			b.user.Permissions.CanUpdatePackages = true
		case models.PermDeletePackages:
			b.user.Permissions.CanDeletePackages = true
		case models.PermCreateSubPackages:
			b.user.Permissions.CanCreateSubPackages = true
		case models.PermUpdateSubPackages:
			b.user.Permissions.CanUpdateSubPackages = true
		case models.PermDeleteSubPackages:
			b.user.Permissions.CanDeleteSubPackages = true
		}
	}
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

// CreateRequest returns the admin payload that creates this user with password.
func (b *UserBuilder) CreateRequest(password string) *models.CreateUserRequest {
	return &models.CreateUserRequest{
		Name:        b.user.Name,
		Email:       b.user.Email,
		Password:    password,
		Role:        b.user.Role,
		Permissions: b.user.Permissions,
	}
}

// ===== Package Fixtures =====

// NewPackageRequest returns a create payload with a unique category.
func NewPackageRequest() *models.CreatePackageRequest {
	return &models.CreatePackageRequest{
		Category:    "Spiritual Tours " + primitive.NewObjectID().Hex()[:6],
		Description: "Pilgrimages across the Himalayas",
	}
}

// ===== SubPackage Fixtures =====

// SubPackageBuilder provides fluent API for building sub-package form fields.
type SubPackageBuilder struct {
	fields map[string]string
}

// NewSubPackage creates a builder holding the fields of a typical tour.
func NewSubPackage(parentID string) *SubPackageBuilder {
	return &SubPackageBuilder{
		fields: map[string]string{
			"name":           "Kedarnath Yatra",
			"description":    "Five day pilgrimage",
			"duration":       "5 Days / 4 Nights",
			"price":          "15000",
			"packageId":      parentID,
			"introduction":   "Start from Haridwar",
			"tourPlan":       "Day 1: Haridwar to Guptkashi",
			"includeExclude": "Includes stay and meals",
		},
	}
}

func (b *SubPackageBuilder) WithName(name string) *SubPackageBuilder {
	b.fields["name"] = name
	return b
}

func (b *SubPackageBuilder) WithPrice(price string) *SubPackageBuilder {
	b.fields["price"] = price
	return b
}

// DealOfTheDay flags the tour as a deal.
func (b *SubPackageBuilder) DealOfTheDay() *SubPackageBuilder {
	b.fields["isDealOfTheDay"] = "true"
	return b
}

// WithPricingDetails sets the JSON encoded pricing table.
func (b *SubPackageBuilder) WithPricingDetails(jsonRows string) *SubPackageBuilder {
	b.fields["pricingDetails"] = jsonRows
	return b
}

// Without removes a field from the form.
func (b *SubPackageBuilder) Without(field string) *SubPackageBuilder {
	delete(b.fields, field)
	return b
}

// Fields returns a copy of the form fields.
func (b *SubPackageBuilder) Fields() map[string]string {
	out := make(map[string]string, len(b.fields))
	for k, v := range b.fields {
		out[k] = v
	}
	return out
}

// ===== Enquiry Fixtures =====

// NewEnquiryRequest returns a valid public form payload.
func NewEnquiryRequest() *models.CreateEnquiryRequest {
	return &models.CreateEnquiryRequest{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Message: "Is the June batch still open?",
	}
}

// ===== Image Fixtures =====

// PNG renders a solid colour image of the given size.
func PNG(width, height int) []byte {
	img := imaging.New(width, height, color.NRGBA{R: 40, G: 120, B: 200, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Package errors provides custom error types for the application.
package errors

import "errors"

// Catalog validation errors
var (
	ErrPackageIDRequired     = errors.New("package ID is required")
	ErrMainImageRequired     = errors.New("no main image uploaded")
	ErrGalleryImagesNotArray = errors.New("galleryImages must be an array")
	ErrInvalidImage          = errors.New("uploaded file is not a supported image")
	ErrInvalidPricingDetails = errors.New("pricingDetails must be a JSON array")
)

// Catalog not-found errors
var (
	ErrPackageNotFound      = errors.New("package not found")
	ErrSubPackageNotFound   = errors.New("subpackage not found")
	ErrParentNotFound       = errors.New("package or subpackage not found")
	ErrGalleryImageNotFound = errors.New("image not found")
	ErrNoDealOfTheDay       = errors.New("no deal of the day found")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role, must be admin or employee")
)

// Auth errors
var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidToken            = errors.New("invalid token")
	ErrInvalidOTP              = errors.New("invalid or expired OTP")
	ErrInvalidResetToken       = errors.New("invalid or expired reset token")
)

// Enquiry errors
var (
	ErrEnquiryNotFound = errors.New("enquiry not found")
)

// Media cleanup errors
var (
	ErrCleanupQueueFull = errors.New("media cleanup queue is full")
)

var validationErrors = []error{
	ErrPackageIDRequired,
	ErrMainImageRequired,
	ErrGalleryImagesNotArray,
	ErrInvalidImage,
	ErrInvalidPricingDetails,
	ErrInvalidRole,
}

var notFoundErrors = []error{
	ErrPackageNotFound,
	ErrSubPackageNotFound,
	ErrParentNotFound,
	ErrGalleryImageNotFound,
	ErrNoDealOfTheDay,
	ErrUserNotFound,
	ErrEnquiryNotFound,
}

// IsValidation reports whether err belongs to the validation group (HTTP 400).
func IsValidation(err error) bool {
	return matchesAny(err, validationErrors)
}

// IsNotFound reports whether err belongs to the not-found group (HTTP 404).
func IsNotFound(err error) bool {
	return matchesAny(err, notFoundErrors)
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

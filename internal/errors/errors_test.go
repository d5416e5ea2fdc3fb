package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrPackageIDRequired", ErrPackageIDRequired, "package ID is required"},
		{"ErrMainImageRequired", ErrMainImageRequired, "no main image uploaded"},
		{"ErrGalleryImagesNotArray", ErrGalleryImagesNotArray, "galleryImages must be an array"},
		{"ErrParentNotFound", ErrParentNotFound, "package or subpackage not found"},
		{"ErrSubPackageNotFound", ErrSubPackageNotFound, "subpackage not found"},
		{"ErrGalleryImageNotFound", ErrGalleryImageNotFound, "image not found"},
		{"ErrNoDealOfTheDay", ErrNoDealOfTheDay, "no deal of the day found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrInvalidOTP", ErrInvalidOTP, "invalid or expired OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrPackageIDRequired))
	assert.True(t, IsValidation(ErrMainImageRequired))
	assert.True(t, IsValidation(fmt.Errorf("upload gallery: %w", ErrInvalidImage)))
	assert.False(t, IsValidation(ErrSubPackageNotFound))
	assert.False(t, IsValidation(errors.New("connection reset")))
	assert.False(t, IsValidation(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrParentNotFound))
	assert.True(t, IsNotFound(ErrNoDealOfTheDay))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrSubPackageNotFound)))
	assert.False(t, IsNotFound(ErrMainImageRequired))
	assert.False(t, IsNotFound(errors.New("timeout")))
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrPackageNotFound, ErrSubPackageNotFound))
	assert.False(t, errors.Is(ErrParentNotFound, ErrSubPackageNotFound))
	assert.NotEqual(t, ErrPackageIDRequired, ErrMainImageRequired)
}

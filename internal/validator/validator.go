// Package validator registers the custom binding rules used by request models.
package validator

import (
	"tour-catalog/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validateObjectID validates that a string is a 24-character hex ObjectID.
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// validateRole validates that a string names a known user role.
func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleAdmin, models.RoleEmployee:
		return true
	}
	return false
}

// Register adds the custom rules to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("objectid", validateObjectID); err != nil {
		return err
	}
	return v.RegisterValidation("role", validateRole)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = Register(v)
	}
}

// Package authz decides whether a signed-in user may perform a catalog action.
package authz

import (
	"context"

	"tour-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks tour-catalog/internal/authz Authorizer

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform reports whether the user holds perm. Admins hold every permission.
	CanPerform(ctx context.Context, userID primitive.ObjectID, perm models.Permission) (bool, error)

	// IsAdmin reports whether the user currently has the admin role.
	IsAdmin(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

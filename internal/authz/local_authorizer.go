package authz

import (
	"context"
	"errors"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserFinder is the lookup LocalAuthorizer needs from the user store.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// LocalAuthorizer implements Authorizer against the stored user record, so
// permission changes take effect on the next request without re-login.
type LocalAuthorizer struct {
	users UserFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(users UserFinder) *LocalAuthorizer {
	return &LocalAuthorizer{users: users}
}

// CanPerform checks the user's role and permission flags.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, userID primitive.ObjectID, perm models.Permission) (bool, error) {
	user, err := a.find(ctx, userID)
	if err != nil || user == nil {
		return false, err
	}

	if user.IsAdmin() {
		return true, nil
	}
	return user.Permissions.Has(perm), nil
}

// IsAdmin checks the user's stored role.
func (a *LocalAuthorizer) IsAdmin(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	user, err := a.find(ctx, userID)
	if err != nil || user == nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// find returns nil, nil for deleted accounts.
func (a *LocalAuthorizer) find(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Ensure LocalAuthorizer implements Authorizer
var _ Authorizer = (*LocalAuthorizer)(nil)

package service

import (
	"context"
	"strings"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	"tour-catalog/internal/repository"
	"tour-catalog/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles admin management of staff accounts.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser creates an admin or employee account. Role defaults to employee.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if role != models.RoleAdmin && role != models.RoleEmployee {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        req.Name,
		Email:       normalizeEmail(req.Email),
		Password:    hashedPassword,
		Role:        role,
		Permissions: req.Permissions,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdatePermissions changes a user's role and/or permission flags.
func (s *UserService) UpdatePermissions(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Role != nil && *req.Role != models.RoleAdmin && *req.Role != models.RoleEmployee {
		return nil, apperrors.ErrInvalidRole
	}

	return s.repo.UpdatePermissions(ctx, objectID, req)
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.repo.Delete(ctx, objectID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

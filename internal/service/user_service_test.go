package service

import (
	"context"
	"testing"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	repomocks "tour-catalog/internal/repository/mocks"
	"tour-catalog/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNewUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockUserRepository(ctrl)

	service := NewUserService(mockRepo)

	assert.NotNil(t, service)
	assert.Equal(t, mockRepo, service.repo)
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("creates an employee with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *models.User) error {
				u.ID = primitive.NewObjectID()
				return nil
			})

		service := NewUserService(mockRepo)
		user, err := service.CreateUser(context.Background(), &models.CreateUserRequest{
			Name:        "Asha",
			Email:       "Asha@Example.com",
			Password:    "secret123",
			Permissions: models.Permissions{CanCreateSubPackages: true},
		})

		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, models.RoleEmployee, user.Role)
		assert.True(t, user.Permissions.CanCreateSubPackages)
		assert.NoError(t, auth.CheckPassword("secret123", user.Password))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewUserService(repomocks.NewMockUserRepository(ctrl))
		_, err := service.CreateUser(context.Background(), &models.CreateUserRequest{Email: "a@b.c", Password: "secret123", Role: "owner"})

		assert.Equal(t, apperrors.ErrInvalidRole, err)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)

		service := NewUserService(mockRepo)
		_, err := service.CreateUser(context.Background(), &models.CreateUserRequest{Email: "a@b.c", Password: "secret123"})

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("returns error for invalid ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewUserService(repomocks.NewMockUserRepository(ctrl))
		user, err := service.GetUser(context.Background(), "invalid-id")

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("fetches from repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)

		service := NewUserService(mockRepo)
		user, err := service.GetUser(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})
}

func TestUserService_UpdatePermissions(t *testing.T) {
	t.Run("passes request to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		perms := &models.Permissions{CanDeletePackages: true}
		req := &models.UpdatePermissionsRequest{Permissions: perms}

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().UpdatePermissions(gomock.Any(), id, req).Return(&models.User{ID: id, Permissions: *perms}, nil)

		service := NewUserService(mockRepo)
		user, err := service.UpdatePermissions(context.Background(), id.Hex(), req)

		require.NoError(t, err)
		assert.True(t, user.Permissions.CanDeletePackages)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		role := "owner"
		service := NewUserService(repomocks.NewMockUserRepository(ctrl))
		_, err := service.UpdatePermissions(context.Background(), primitive.NewObjectID().Hex(), &models.UpdatePermissionsRequest{Role: &role})

		assert.Equal(t, apperrors.ErrInvalidRole, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("returns error for invalid ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewUserService(repomocks.NewMockUserRepository(ctrl))

		assert.Equal(t, apperrors.ErrUserNotFound, service.DeleteUser(context.Background(), "invalid-id"))
	})

	t.Run("deletes user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		service := NewUserService(mockRepo)

		assert.NoError(t, service.DeleteUser(context.Background(), id.Hex()))
	})
}

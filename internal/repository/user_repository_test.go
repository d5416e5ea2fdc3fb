package repository

import (
	"context"
	"testing"
	"time"

	"tour-catalog/internal/database"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
			Role:     models.RoleEmployee,
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
		assert.NotZero(t, user.UpdatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user1 := &models.User{Email: "duplicate@example.com", Password: "hashedpassword", Name: "User 1"}
		require.NoError(t, repo.Create(ctx, user1))

		user2 := &models.User{Email: "duplicate@example.com", Password: "hashedpassword", Name: "User 2"}
		err := repo.Create(ctx, user2)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing user", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{
			Email:       "findbyid@example.com",
			Password:    "hashedpassword",
			Name:        "Find By ID User",
			Role:        models.RoleEmployee,
			Permissions: models.Permissions{CanCreateSubPackages: true},
		}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Email, found.Email)
		assert.True(t, found.Permissions.CanCreateSubPackages)
		assert.False(t, found.Permissions.CanDeletePackages)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{Email: "findbyemail@example.com", Password: "hashedpassword", Name: "Find By Email"}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByEmail(ctx, "findbyemail@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "hashedpassword", found.Password)
	})

	t.Run("returns error for non-existent email", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		found, err := repo.FindByEmail(ctx, "nonexistent@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns all users", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		require.NoError(t, repo.Create(ctx, &models.User{Email: "user1@example.com", Name: "User 1"}))
		require.NoError(t, repo.Create(ctx, &models.User{Email: "user2@example.com", Name: "User 2"}))
		require.NoError(t, repo.Create(ctx, &models.User{Email: "user3@example.com", Name: "User 3"}))

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("returns empty slice when no users", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Len(t, users, 0)
	})
}

func TestUserRepository_UpdatePermissions(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("replaces permissions and keeps role", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{Email: "perm@example.com", Name: "Perm", Role: models.RoleEmployee}
		require.NoError(t, repo.Create(ctx, user))

		perms := models.Permissions{CanUpdateSubPackages: true, CanDeleteSubPackages: true}
		updated, err := repo.UpdatePermissions(ctx, user.ID, &models.UpdatePermissionsRequest{Permissions: &perms})

		require.NoError(t, err)
		assert.Equal(t, models.RoleEmployee, updated.Role)
		assert.Equal(t, perms, updated.Permissions)
	})

	t.Run("changes role", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{Email: "role@example.com", Name: "Role", Role: models.RoleEmployee}
		require.NoError(t, repo.Create(ctx, user))

		role := models.RoleAdmin
		updated, err := repo.UpdatePermissions(ctx, user.ID, &models.UpdatePermissionsRequest{Role: &role})

		require.NoError(t, err)
		assert.True(t, updated.IsAdmin())
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		role := models.RoleAdmin
		updated, err := repo.UpdatePermissions(ctx, primitive.NewObjectID(), &models.UpdatePermissionsRequest{Role: &role})

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_PasswordReset(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("otp is replaced by reset token and cleared by password update", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{Email: "reset@example.com", Name: "Reset", Password: "old"}
		require.NoError(t, repo.Create(ctx, user))

		expires := time.Now().Add(10 * time.Minute)
		require.NoError(t, repo.SetOTP(ctx, user.ID, "otp-hash", expires))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "otp-hash", found.OTP)
		require.NotNil(t, found.OTPExpires)
		assert.WithinDuration(t, expires, *found.OTPExpires, time.Second)

		require.NoError(t, repo.SetResetToken(ctx, user.ID, "token-hash", expires))

		found, err = repo.FindByResetToken(ctx, "token-hash")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Empty(t, found.OTP)
		assert.Nil(t, found.OTPExpires)

		require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new"))

		found, err = repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new", found.Password)
		assert.Empty(t, found.ResetPasswordToken)
		assert.Nil(t, found.ResetPasswordExpires)

		_, err = repo.FindByResetToken(ctx, "token-hash")
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("empty token never matches", func(t *testing.T) {
		found, err := repo.FindByResetToken(ctx, "")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		assert.Equal(t, apperrors.ErrUserNotFound, repo.SetOTP(ctx, primitive.NewObjectID(), "x", time.Now()))
		assert.Equal(t, apperrors.ErrUserNotFound, repo.UpdatePassword(ctx, primitive.NewObjectID(), "x"))
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing user", func(t *testing.T) {
		tdb.ClearCollection(t, database.UsersCollection)

		user := &models.User{Email: "delete@example.com", Name: "Delete Me"}
		require.NoError(t, repo.Create(ctx, user))

		err := repo.Delete(ctx, user.ID)
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, user.ID)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	"tour-catalog/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const adminID = "507f1f77bcf86cd799439011"

func newUserRouter(m *mocks.MockUserService) *gin.Engine {
	h := NewUserHandler(m)
	router := gin.New()
	router.Use(withSession(adminID))
	router.GET("/users/me", h.GetMe)
	router.GET("/users", h.GetAllUsers)
	router.POST("/users", h.CreateUser)
	router.PUT("/users/:id/permissions", h.UpdatePermissions)
	router.DELETE("/users/:id", h.DeleteUser)
	return router
}

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_GetMe(t *testing.T) {
	var gotID string
	m := &mocks.MockUserService{
		GetUserFunc: func(ctx context.Context, id string) (*models.User, error) {
			gotID = id
			return &models.User{Email: "admin@example.com", Password: "hash", CreatedAt: time.Now()}, nil
		},
	}

	w := httptest.NewRecorder()
	newUserRouter(m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminID, gotID)
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "created",
			body:           map[string]interface{}{"name": "Asha", "email": "asha@example.com", "password": "secret123", "permissions": map[string]bool{"canCreateSubPackages": true}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           map[string]interface{}{"name": "Asha", "email": "asha@example.com", "password": "secret123"},
			serviceErr:     apperrors.ErrUserAlreadyExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown role",
			body:           map[string]interface{}{"name": "Asha", "email": "asha@example.com", "password": "secret123", "role": "owner"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           map[string]interface{}{"name": "Asha", "email": "asha@example.com", "password": "123"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.MockUserService{
				CreateUserFunc: func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &models.User{ID: primitive.NewObjectID(), Email: req.Email, Permissions: req.Permissions}, nil
				},
			}

			w := httptest.NewRecorder()
			newUserRouter(m).ServeHTTP(w, jsonRequest(t, http.MethodPost, "/users", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	m := &mocks.MockUserService{
		GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil
		},
	}

	w := httptest.NewRecorder()
	newUserRouter(m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Len(t, body["data"], 2)
}

func TestUserHandler_UpdatePermissions(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("updates flags", func(t *testing.T) {
		var got *models.UpdatePermissionsRequest
		m := &mocks.MockUserService{
			UpdatePermissionsFunc: func(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error) {
				got = req
				return &models.User{ID: userID, Permissions: *req.Permissions}, nil
			},
		}

		w := httptest.NewRecorder()
		newUserRouter(m).ServeHTTP(w, jsonRequest(t, http.MethodPut, "/users/"+userID.Hex()+"/permissions", map[string]interface{}{
			"permissions": map[string]bool{"canDeleteSubPackages": true},
		}))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.Permissions)
		assert.True(t, got.Permissions.CanDeleteSubPackages)
		assert.Nil(t, got.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		m := &mocks.MockUserService{
			UpdatePermissionsFunc: func(ctx context.Context, id string, req *models.UpdatePermissionsRequest) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		w := httptest.NewRecorder()
		newUserRouter(m).ServeHTTP(w, jsonRequest(t, http.MethodPut, "/users/"+userID.Hex()+"/permissions", map[string]interface{}{"role": "admin"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("deletes another user", func(t *testing.T) {
		m := &mocks.MockUserService{
			DeleteUserFunc: func(ctx context.Context, id string) error { return nil },
		}

		w := httptest.NewRecorder()
		newUserRouter(m).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refuses to delete self", func(t *testing.T) {
		called := false
		m := &mocks.MockUserService{
			DeleteUserFunc: func(ctx context.Context, id string) error {
				called = true
				return nil
			},
		}

		w := httptest.NewRecorder()
		newUserRouter(m).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+adminID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-catalog/internal/authz/mocks"
	"tour-catalog/internal/models"
	"tour-catalog/pkg/auth"
	"tour-catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func runGate(gate gin.HandlerFunc, session *auth.Session) (*httptest.ResponseRecorder, bool) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/subpackages", nil)
	if session != nil {
		c.Set(SessionKey, *session)
	}

	var handlerCalled bool
	gate(c)
	if !c.IsAborted() {
		handlerCalled = true
		c.Status(http.StatusOK)
	}
	return w, handlerCalled
}

func TestRequirePermission(t *testing.T) {
	userID := primitive.NewObjectID()
	session := &auth.Session{UserID: userID.Hex(), Role: models.RoleEmployee}

	t.Run("allows request when user holds permission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().
			CanPerform(gomock.Any(), userID, models.PermCreateSubPackages).
			Return(true, nil)

		w, called := runGate(RequirePermission(mockAuthz, models.PermCreateSubPackages), session)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects request when user lacks permission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().
			CanPerform(gomock.Any(), userID, models.PermDeleteSubPackages).
			Return(false, nil)

		w, called := runGate(RequirePermission(mockAuthz, models.PermDeleteSubPackages), session)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "insufficient permissions", resp.Message)
	})

	t.Run("rejects request without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)

		w, called := runGate(RequirePermission(mockAuthz, models.PermCreatePackages), nil)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)

		w, called := runGate(RequirePermission(mockAuthz, models.PermCreatePackages), &auth.Session{UserID: "not-an-id"})

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 500 when lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().
			CanPerform(gomock.Any(), userID, models.PermUpdatePackages).
			Return(false, assert.AnError)

		w, called := runGate(RequirePermission(mockAuthz, models.PermUpdatePackages), session)

		assert.False(t, called)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	userID := primitive.NewObjectID()
	session := &auth.Session{UserID: userID.Hex(), Role: models.RoleAdmin}

	t.Run("allows admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().IsAdmin(gomock.Any(), userID).Return(true, nil)

		w, called := runGate(RequireAdmin(mockAuthz), session)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects user demoted since login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().IsAdmin(gomock.Any(), userID).Return(false, nil)

		w, called := runGate(RequireAdmin(mockAuthz), session)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects request without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, called := runGate(RequireAdmin(mocks.NewMockAuthorizer(ctrl)), nil)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 500 when lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuthz := mocks.NewMockAuthorizer(ctrl)
		mockAuthz.EXPECT().IsAdmin(gomock.Any(), userID).Return(false, assert.AnError)

		w, called := runGate(RequireAdmin(mockAuthz), session)

		assert.False(t, called)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

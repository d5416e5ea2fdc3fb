package router

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authzmocks "tour-catalog/internal/authz/mocks"
	"tour-catalog/internal/handler"
	"tour-catalog/internal/middleware"
	"tour-catalog/internal/models"
	"tour-catalog/internal/service"
	"tour-catalog/internal/service/mocks"
	"tour-catalog/internal/validator"
	"tour-catalog/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

type testServer struct {
	engine     *gin.Engine
	tokens     *auth.JWTManager
	authorizer *authzmocks.MockAuthorizer
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	authorizer := authzmocks.NewMockAuthorizer(ctrl)
	tokens := auth.NewJWTManager("router-test-secret", time.Hour)

	subPackages := &mocks.MockSubPackageService{
		ListAllFunc: func(ctx context.Context) ([]models.SubPackage, error) {
			return []models.SubPackage{}, nil
		},
		CreateSubPackageFunc: func(ctx context.Context, req *models.SubPackageRequest, files service.SubPackageFiles) (*models.SubPackage, error) {
			return &models.SubPackage{ID: primitive.NewObjectID()}, nil
		},
		GetDealsOfTheDayFunc: func(ctx context.Context) ([]models.SubPackage, error) {
			return []models.SubPackage{{Name: "deal"}}, nil
		},
		GetSubPackageFunc: func(ctx context.Context, id string) (*models.SubPackage, error) {
			return &models.SubPackage{Name: "detail"}, nil
		},
	}
	enquiries := &mocks.MockEnquiryService{
		CreateEnquiryFunc: func(ctx context.Context, source string, req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
			return &models.Enquiry{Source: source}, nil
		},
	}
	users := &mocks.MockUserService{
		GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	engine := Setup(&Config{
		SubPackageHandler: handler.NewSubPackageHandler(subPackages),
		PackageHandler:    handler.NewPackageHandler(&mocks.MockPackageService{}),
		AuthHandler:       handler.NewAuthHandler(&mocks.MockAuthService{}),
		UserHandler:       handler.NewUserHandler(users),
		EnquiryHandler:    handler.NewEnquiryHandler(enquiries),
		Tokens:            tokens,
		Authorizer:        authorizer,
		FormLimiter:       middleware.NewRateLimiter(1),
		Logger:            logger,
		Checks: map[string]func(context.Context) error{
			"mongo": func(ctx context.Context) error { return nil },
		},
	})

	return &testServer{engine: engine, tokens: tokens, authorizer: authorizer}
}

func (s *testServer) do(t *testing.T, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) token(t *testing.T, userID primitive.ObjectID, role string) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(userID.Hex(), role)
	require.NoError(t, err)
	return token
}

func TestSetup_PublicRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("readiness", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/health/ready", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongo":"ok"`)
	})

	t.Run("catalog reads need no token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/subpackages", "", nil).Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/subpackages/deal-of-the-day", "", nil).Code)
	})

	t.Run("static segments win over the id parameter", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/subpackages/deal-of-the-day", "", nil)
		assert.Contains(t, w.Body.String(), "deal")

		w = s.do(t, http.MethodGet, "/api/subpackages/"+primitive.NewObjectID().Hex(), "", nil)
		assert.Contains(t, w.Body.String(), "detail")
	})
}

func TestSetup_WriteRoutesAreGated(t *testing.T) {
	s := newTestServer(t)
	employeeID := primitive.NewObjectID()

	t.Run("missing token", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/subpackages", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("employee without the permission", func(t *testing.T) {
		s.authorizer.EXPECT().
			CanPerform(gomock.Any(), employeeID, models.PermDeleteSubPackages).
			Return(false, nil)

		w := s.do(t, http.MethodDelete, "/api/subpackages/"+primitive.NewObjectID().Hex(), s.token(t, employeeID, models.RoleEmployee), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("employee with the permission", func(t *testing.T) {
		s.authorizer.EXPECT().
			CanPerform(gomock.Any(), employeeID, models.PermCreateSubPackages).
			Return(true, nil)

		w := s.do(t, http.MethodPost, "/api/subpackages", s.token(t, employeeID, models.RoleEmployee), nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("user administration is admin only", func(t *testing.T) {
		s.authorizer.EXPECT().IsAdmin(gomock.Any(), employeeID).Return(false, nil)

		w := s.do(t, http.MethodGet, "/api/users", s.token(t, employeeID, models.RoleEmployee), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSetup_ContactIsRateLimited(t *testing.T) {
	s := newTestServer(t)
	body := []byte(`{"name":"Ravi","email":"ravi@example.com","message":"Hello"}`)

	first := s.do(t, http.MethodPost, "/api/contact", "", body)
	second := s.do(t, http.MethodPost, "/api/contact", "", body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

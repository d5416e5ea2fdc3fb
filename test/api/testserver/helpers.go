//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tour-catalog/internal/models"
	"tour-catalog/pkg/response"
	"tour-catalog/test/fixtures"
	"tour-catalog/test/testutil"

	"github.com/stretchr/testify/require"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password123"

// AuthHelper provides account and login helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// SeedUser creates the account described by b through the user service.
func (ah *AuthHelper) SeedUser(t *testing.T, b *fixtures.UserBuilder) *models.User {
	t.Helper()

	user, err := ah.server.UserService.CreateUser(context.Background(), b.CreateRequest(DefaultPassword))
	require.NoError(t, err, "failed to seed user")
	return user
}

// Login logs in and returns the response data.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/users/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	return DataMap(t, w.Body.Bytes())
}

// Token logs in as user and returns the bearer token.
func (ah *AuthHelper) Token(t *testing.T, user *models.User) string {
	t.Helper()

	token, ok := ah.Login(t, user.Email, DefaultPassword)["token"].(string)
	require.True(t, ok, "token should be a string")
	return token
}

// AdminToken seeds an admin and returns it with a bearer token.
func (ah *AuthHelper) AdminToken(t *testing.T) (*models.User, string) {
	t.Helper()

	admin := ah.SeedUser(t, fixtures.NewUser().WithName("Admin").AsAdmin())
	return admin, ah.Token(t, admin)
}

// EmployeeToken seeds an employee holding perms and returns it with a bearer token.
func (ah *AuthHelper) EmployeeToken(t *testing.T, perms ...models.Permission) (*models.User, string) {
	t.Helper()

	employee := ah.SeedUser(t, fixtures.NewUser().WithName("Employee").WithPermissions(perms...))
	return employee, ah.Token(t, employee)
}

// CatalogHelper creates packages and sub-packages through the API.
type CatalogHelper struct {
	server *TestServer
}

// NewCatalogHelper creates a new catalog helper.
func NewCatalogHelper(server *TestServer) *CatalogHelper {
	return &CatalogHelper{server: server}
}

// CreatePackage creates a package and returns it.
func (ch *CatalogHelper) CreatePackage(t *testing.T, token string) models.Package {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ch.server.Router, http.MethodPost, "/api/packages", token, fixtures.NewPackageRequest())
	require.Equal(t, http.StatusCreated, w.Code, "create package should return 201, got: %s", w.Body.String())

	return ParseResponseData[models.Package](t, DataMap(t, w.Body.Bytes()))
}

// CreateSubPackage posts b with a main image and the given gallery files.
func (ch *CatalogHelper) CreateSubPackage(t *testing.T, token string, b *fixtures.SubPackageBuilder, gallery ...testutil.FormFile) models.SubPackage {
	t.Helper()

	files := append([]testutil.FormFile{MainImage()}, gallery...)
	w := testutil.MakeMultipartRequest(t, ch.server.Router, http.MethodPost, "/api/subpackages", token, b.Fields(), files...)
	require.Equal(t, http.StatusCreated, w.Code, "create sub-package should return 201, got: %s", w.Body.String())

	var sp models.SubPackage
	testutil.ParseResponse(t, w, &sp)
	return sp
}

// GetSubPackage reads a sub-package through the public endpoint.
func (ch *CatalogHelper) GetSubPackage(t *testing.T, id string) models.SubPackage {
	t.Helper()

	w := testutil.MakeRequest(t, ch.server.Router, http.MethodGet, "/api/subpackages/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, "get sub-package should return 200, got: %s", w.Body.String())

	var sp models.SubPackage
	testutil.ParseResponse(t, w, &sp)
	return sp
}

// MainImage is a PNG wider than the configured maximum width.
func MainImage() testutil.FormFile {
	return testutil.FormFile{
		Field:       "mainImage",
		Filename:    "main.png",
		ContentType: "image/png",
		Data:        fixtures.PNG(TestImageMaxWidth*2, 300),
	}
}

// GalleryImage is a small PNG sent as a gallery upload.
func GalleryImage(name string) testutil.FormFile {
	return testutil.FormFile{
		Field:       "galleryImages",
		Filename:    name,
		ContentType: "image/png",
		Data:        fixtures.PNG(64, 64),
	}
}

// DataMap decodes a response envelope and returns its data object.
func DataMap(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	require.True(t, resp.Success, "response should be successful: %s", string(body))

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData converts decoded response data into a specific type.
func ParseResponseData[T any](t *testing.T, data interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	require.NoError(t, json.Unmarshal(jsonBytes, &result), "failed to unmarshal response data")
	return result
}

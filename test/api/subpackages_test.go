//go:build api

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tour-catalog/internal/cache"
	"tour-catalog/internal/models"
	"tour-catalog/test/api/testserver"
	"tour-catalog/test/fixtures"
	"tour-catalog/test/testutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedWidth downloads the object behind url and returns its pixel width.
func storedWidth(t *testing.T, url string) int {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()

	out, err := testServer.MinIO.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(testServer.MinIO.Bucket),
		Key:    aws.String(testServer.MinIO.KeyFromURL(url)),
	})
	require.NoError(t, err)
	defer out.Body.Close()

	img, err := imaging.Decode(out.Body)
	require.NoError(t, err)
	return img.Bounds().Dx()
}

func TestSubPackages_CreateNested(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	ctx := context.Background()
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, token := authHelper.AdminToken(t)

	pkg := catalog.CreatePackage(t, token)

	tour := catalog.CreateSubPackage(t, token,
		fixtures.NewSubPackage(pkg.ID.Hex()).WithPricingDetails(`[{"noOfPax":2,"cab":"Sedan","costPerPax":5000}]`),
		testserver.GalleryImage("g1.png"), testserver.GalleryImage("g2.png"))

	t.Run("stores fields images and pricing rows", func(t *testing.T) {
		assert.Equal(t, "Kedarnath Yatra", tour.Name)
		require.NotNil(t, tour.Price)
		assert.Equal(t, 15000.0, *tour.Price)
		assert.Equal(t, pkg.ID, tour.PackageID)
		assert.False(t, tour.IsDealOfTheDay)
		require.Len(t, tour.PricingDetails, 1)
		assert.Equal(t, "Sedan", tour.PricingDetails[0].Cab)
		assert.False(t, tour.PricingDetails[0].ID.IsZero())
		require.Len(t, tour.GalleryImages, 2)
		assert.Empty(t, tour.SubPackages)

		assert.True(t, testServer.MinIO.ObjectExists(ctx, testServer.MinIO.KeyFromURL(tour.ImageURL)))
		for _, img := range tour.GalleryImages {
			assert.True(t, testServer.MinIO.ObjectExists(ctx, testServer.MinIO.KeyFromURL(img.URL)))
		}
	})

	t.Run("main image is scaled to the configured width", func(t *testing.T) {
		assert.Equal(t, testserver.TestImageMaxWidth, storedWidth(t, tour.ImageURL))
	})

	t.Run("links the tour into its package", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/packages/"+pkg.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		got := testserver.ParseResponseData[models.Package](t, testserver.DataMap(t, w.Body.Bytes()))
		assert.Contains(t, got.SubPackages, tour.ID)
	})

	t.Run("creates a child under a sub-package", func(t *testing.T) {
		child := catalog.CreateSubPackage(t, token, fixtures.NewSubPackage(tour.ID.Hex()).WithName("Badrinath Extension").Without("price"))

		assert.Equal(t, tour.ID, child.PackageID)
		assert.Nil(t, child.Price)

		parent := catalog.GetSubPackage(t, tour.ID.Hex())
		assert.Contains(t, parent.SubPackages, child.ID)

		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/package/"+tour.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var children []models.SubPackage
		testutil.ParseResponse(t, w, &children)
		require.Len(t, children, 1)
		assert.Equal(t, child.ID, children[0].ID)
	})

	t.Run("lists every sub-package", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var all []models.SubPackage
		testutil.ParseResponse(t, w, &all)
		assert.Len(t, all, 2)
	})
}

func TestSubPackages_CreateValidation(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, token := authHelper.AdminToken(t)
	pkg := catalog.CreatePackage(t, token)

	tests := []struct {
		name       string
		fields     map[string]string
		files      []testutil.FormFile
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing parent",
			fields:     fixtures.NewSubPackage("").Without("packageId").Fields(),
			files:      []testutil.FormFile{testserver.MainImage()},
			wantStatus: http.StatusBadRequest,
			wantError:  "package ID is required",
		},
		{
			name:       "unknown parent",
			fields:     fixtures.NewSubPackage("507f1f77bcf86cd799439011").Fields(),
			files:      []testutil.FormFile{testserver.MainImage()},
			wantStatus: http.StatusNotFound,
			wantError:  "package or subpackage not found",
		},
		{
			name:       "missing main image",
			fields:     fixtures.NewSubPackage(pkg.ID.Hex()).Fields(),
			wantStatus: http.StatusBadRequest,
			wantError:  "no main image uploaded",
		},
		{
			name:       "malformed pricing details",
			fields:     fixtures.NewSubPackage(pkg.ID.Hex()).WithPricingDetails("not json").Fields(),
			files:      []testutil.FormFile{testserver.MainImage()},
			wantStatus: http.StatusBadRequest,
			wantError:  "pricingDetails must be a JSON array",
		},
		{
			name:   "main image that is not an image",
			fields: fixtures.NewSubPackage(pkg.ID.Hex()).Fields(),
			files: []testutil.FormFile{{
				Field: "mainImage", Filename: "notes.txt", ContentType: "text/plain", Data: []byte("hello"),
			}},
			wantStatus: http.StatusBadRequest,
			wantError:  "uploaded file is not a supported image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/subpackages", token, tt.fields, tt.files...)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.wantError)
		})
	}

	t.Run("nothing was stored", func(t *testing.T) {
		keys, err := testServer.MinIO.ListKeys(context.Background())
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestSubPackages_Update(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	ctx := context.Background()
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, token := authHelper.AdminToken(t)
	pkg := catalog.CreatePackage(t, token)

	testServer.StartCleanupProcessor(ctx)
	defer testServer.StopCleanupProcessor()

	tour := catalog.CreateSubPackage(t, token,
		fixtures.NewSubPackage(pkg.ID.Hex()).WithPricingDetails(`[{"noOfPax":2,"cab":"Sedan","costPerPax":5000}]`),
		testserver.GalleryImage("g1.png"))
	oldMainKey := testServer.MinIO.KeyFromURL(tour.ImageURL)

	t.Run("JSON update replaces scalars only", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/subpackages/"+tour.ID.Hex(), token,
			map[string]interface{}{"name": "Kedarnath Deluxe", "price": 18000})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := testserver.ParseResponseData[models.SubPackage](t, testserver.DataMap(t, w.Body.Bytes()))
		assert.Equal(t, "Kedarnath Deluxe", got.Name)
		require.NotNil(t, got.Price)
		assert.Equal(t, 18000.0, *got.Price)
		assert.Equal(t, tour.Description, got.Description)
		assert.Len(t, got.GalleryImages, 1)
		assert.Len(t, got.PricingDetails, 1)
	})

	t.Run("multipart update appends gallery and pricing and replaces the main image", func(t *testing.T) {
		replacement := testserver.MainImage()
		replacement.Field = "imageUrl"

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, "/api/subpackages/"+tour.ID.Hex(), token,
			map[string]string{"pricingDetails": `[{"noOfPax":4,"cab":"SUV","costPerPax":4500}]`},
			replacement, testserver.GalleryImage("g2.png"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := testserver.ParseResponseData[models.SubPackage](t, testserver.DataMap(t, w.Body.Bytes()))
		assert.Len(t, got.GalleryImages, 2)
		require.Len(t, got.PricingDetails, 2)
		assert.Equal(t, "SUV", got.PricingDetails[1].Cab)
		assert.NotEqual(t, tour.ImageURL, got.ImageURL)

		assert.Eventually(t, func() bool {
			return !testServer.MinIO.ObjectExists(ctx, oldMainKey)
		}, 5*time.Second, 50*time.Millisecond, "replaced main image should be removed from the media store")
	})

	t.Run("gallery field without files is rejected", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, "/api/subpackages/"+tour.ID.Hex(), token,
			map[string]string{"galleryImages": "https://cdn.example.com/a.jpg"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "galleryImages must be an array")
	})

	t.Run("unknown sub-package", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/subpackages/507f1f77bcf86cd799439011", token,
			map[string]string{"name": "x"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubPackages_DeleteGalleryImage(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	ctx := context.Background()
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, token := authHelper.AdminToken(t)
	pkg := catalog.CreatePackage(t, token)

	testServer.StartCleanupProcessor(ctx)
	defer testServer.StopCleanupProcessor()

	tour := catalog.CreateSubPackage(t, token, fixtures.NewSubPackage(pkg.ID.Hex()),
		testserver.GalleryImage("g1.png"), testserver.GalleryImage("g2.png"))
	removed := tour.GalleryImages[0]

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete,
		"/api/subpackages/"+tour.ID.Hex()+"/gallery/"+removed.ID.Hex(), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Image deleted successfully")

	got := catalog.GetSubPackage(t, tour.ID.Hex())
	require.Len(t, got.GalleryImages, 1)
	assert.Equal(t, tour.GalleryImages[1].ID, got.GalleryImages[0].ID)

	assert.Eventually(t, func() bool {
		return !testServer.MinIO.ObjectExists(ctx, testServer.MinIO.KeyFromURL(removed.URL))
	}, 5*time.Second, 50*time.Millisecond)

	t.Run("deleting it again is a 404", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete,
			"/api/subpackages/"+tour.ID.Hex()+"/gallery/"+removed.ID.Hex(), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubPackages_Delete(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, adminToken := authHelper.AdminToken(t)
	pkg := catalog.CreatePackage(t, adminToken)
	tour := catalog.CreateSubPackage(t, adminToken, fixtures.NewSubPackage(pkg.ID.Hex()))

	t.Run("requires the delete flag", func(t *testing.T) {
		_, token := authHelper.EmployeeToken(t, models.PermCreateSubPackages, models.PermUpdateSubPackages)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/subpackages/"+tour.ID.Hex(), token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("deletes with the flag", func(t *testing.T) {
		_, token := authHelper.EmployeeToken(t, models.PermDeleteSubPackages)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/subpackages/"+tour.ID.Hex(), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Subpackage deleted successfully")

		w = testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/"+tour.ID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("parent keeps the deleted id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/packages/"+pkg.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		got := testserver.ParseResponseData[models.Package](t, testserver.DataMap(t, w.Body.Bytes()))
		assert.Contains(t, got.SubPackages, tour.ID)
	})
}

func TestSubPackages_DealsAndLatest(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	ctx := context.Background()
	authHelper := testserver.NewAuthHelper(testServer)
	catalog := testserver.NewCatalogHelper(testServer)
	_, token := authHelper.AdminToken(t)
	pkg := catalog.CreatePackage(t, token)

	t.Run("no deals is a 404", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/deal-of-the-day", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	var created []models.SubPackage
	for i, name := range []string{"Char Dham", "Valley of Flowers", "Rishikesh Rafting", "Auli Skiing", "Nainital Getaway"} {
		b := fixtures.NewSubPackage(pkg.ID.Hex()).WithName(name)
		if i%2 == 0 {
			b = b.DealOfTheDay()
		}
		created = append(created, catalog.CreateSubPackage(t, token, b))
	}

	t.Run("returns and caches deals", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/deal-of-the-day", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var deals []models.SubPackage
		testutil.ParseResponse(t, w, &deals)
		assert.Len(t, deals, 3)
		for _, d := range deals {
			assert.True(t, d.IsDealOfTheDay)
		}

		exists, err := testServer.Redis.KeyExists(ctx, cache.DealsKey)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unflagging a deal invalidates the cache", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/subpackages/"+created[0].ID.Hex(), token,
			map[string]interface{}{"isDealOfTheDay": false})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/deal-of-the-day", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var deals []models.SubPackage
		testutil.ParseResponse(t, w, &deals)
		assert.Len(t, deals, 2)
	})

	t.Run("latest defaults to four newest first", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/latest", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Message string              `json:"message"`
			Data    []models.SubPackage `json:"data"`
		}
		testutil.ParseResponse(t, w, &resp)
		assert.Equal(t, "Latest tour packages retrieved successfully", resp.Message)
		require.Len(t, resp.Data, 4)
		assert.Equal(t, created[4].ID, resp.Data[0].ID)
		assert.Equal(t, created[1].ID, resp.Data[3].ID)
	})

	t.Run("latest honours the limit", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/subpackages/latest?limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []models.SubPackage `json:"data"`
		}
		testutil.ParseResponse(t, w, &resp)
		assert.Len(t, resp.Data, 2)
	})
}

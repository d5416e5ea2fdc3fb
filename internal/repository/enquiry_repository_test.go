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

func TestEnquiryRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewEnquiryRepository(tdb.Database)
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		tdb.ClearCollection(t, database.EnquiriesCollection)

		older := &models.Enquiry{Name: "Old", Email: "old@example.com", Message: "hi", Source: models.SourceContact}
		require.NoError(t, repo.Create(ctx, older))
		time.Sleep(5 * time.Millisecond)

		spID := primitive.NewObjectID()
		newer := &models.Enquiry{Name: "New", Email: "new@example.com", Message: "batch?", Source: models.SourceEnquiry, SubPackageID: &spID}
		require.NoError(t, repo.Create(ctx, newer))

		enquiries, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, enquiries, 2)
		assert.Equal(t, newer.ID, enquiries[0].ID)
		require.NotNil(t, enquiries[0].SubPackageID)
		assert.Equal(t, spID, *enquiries[0].SubPackageID)
		assert.Nil(t, enquiries[1].SubPackageID)
	})

	t.Run("returns empty slice when none", func(t *testing.T) {
		tdb.ClearCollection(t, database.EnquiriesCollection)

		enquiries, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, enquiries)
		assert.Empty(t, enquiries)
	})

	t.Run("deletes enquiry", func(t *testing.T) {
		e := &models.Enquiry{Name: "Del", Email: "del@example.com", Message: "x", Source: models.SourceContact}
		require.NoError(t, repo.Create(ctx, e))

		require.NoError(t, repo.Delete(ctx, e.ID))
		assert.Equal(t, apperrors.ErrEnquiryNotFound, repo.Delete(ctx, e.ID))
	})
}

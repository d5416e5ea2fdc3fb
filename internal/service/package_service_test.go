package service

import (
	"context"
	"testing"

	"tour-catalog/internal/cache"
	cachemocks "tour-catalog/internal/cache/mocks"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	repomocks "tour-catalog/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestPackageService_CreatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockPackageRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pkg *models.Package) error {
			pkg.ID = primitive.NewObjectID()
			return nil
		})
	mockCache.EXPECT().Delete(gomock.Any(), cache.PackagesKey).Return(nil)

	service := NewPackageService(mockRepo, mockCache)
	pkg, err := service.CreatePackage(context.Background(), &models.CreatePackageRequest{Category: "Treks", Description: "Himalayan treks"})

	require.NoError(t, err)
	assert.False(t, pkg.ID.IsZero())
	assert.Equal(t, "Treks", pkg.Category)
}

func TestPackageService_ListPackages(t *testing.T) {
	pkgs := []models.Package{{ID: primitive.NewObjectID(), Category: "Treks"}}

	t.Run("returns cached list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockPackageRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), cache.PackagesKey, gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				*dest.(*[]models.Package) = pkgs
				return true, nil
			})

		service := NewPackageService(mockRepo, mockCache)
		got, err := service.ListPackages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pkgs, got)
	})

	t.Run("loads and caches on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockPackageRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), cache.PackagesKey, gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().FindAll(gomock.Any()).Return(pkgs, nil)
		mockCache.EXPECT().Set(gomock.Any(), cache.PackagesKey, pkgs, cache.PackagesTTL).Return(nil)

		service := NewPackageService(mockRepo, mockCache)
		got, err := service.ListPackages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pkgs, got)
	})
}

func TestPackageService_UpdatePackage(t *testing.T) {
	t.Run("invalid id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewPackageService(repomocks.NewMockPackageRepository(ctrl), nil)
		_, err := service.UpdatePackage(context.Background(), "bad", &models.UpdatePackageRequest{})

		assert.Equal(t, apperrors.ErrPackageNotFound, err)
	})

	t.Run("updates and invalidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		category := "Adventure"
		req := &models.UpdatePackageRequest{Category: &category}

		mockRepo := repomocks.NewMockPackageRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockRepo.EXPECT().Update(gomock.Any(), id, req).Return(&models.Package{ID: id, Category: category}, nil)
		mockCache.EXPECT().Delete(gomock.Any(), cache.PackagesKey).Return(nil)

		service := NewPackageService(mockRepo, mockCache)
		pkg, err := service.UpdatePackage(context.Background(), id.Hex(), req)

		require.NoError(t, err)
		assert.Equal(t, "Adventure", pkg.Category)
	})
}

func TestPackageService_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockRepo := repomocks.NewMockPackageRepository(ctrl)
	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Package{ID: id}, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	service := NewPackageService(mockRepo, nil)

	pkg, err := service.GetPackage(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, pkg.ID)

	assert.NoError(t, service.DeletePackage(context.Background(), id.Hex()))
	assert.Equal(t, apperrors.ErrPackageNotFound, service.DeletePackage(context.Background(), "bad"))

	_, err = service.GetPackage(context.Background(), "bad")
	assert.Equal(t, apperrors.ErrPackageNotFound, err)
}

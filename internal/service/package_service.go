package service

import (
	"context"

	"tour-catalog/internal/cache"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"
	"tour-catalog/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageService handles business logic for top-level packages.
type PackageService struct {
	repo  repository.PackageRepository
	cache cache.Cache
}

// NewPackageService creates a new PackageService. c may be nil.
func NewPackageService(repo repository.PackageRepository, c cache.Cache) *PackageService {
	return &PackageService{
		repo:  repo,
		cache: c,
	}
}

// CreatePackage stores a new package.
func (s *PackageService) CreatePackage(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error) {
	pkg := &models.Package{
		Category:    req.Category,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, cache.PackagesKey)
	return pkg, nil
}

// ListPackages returns all packages (with caching).
func (s *PackageService) ListPackages(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	if cached(ctx, s.cache, cache.PackagesKey, &pkgs) && pkgs != nil {
		return pkgs, nil
	}

	pkgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	store(ctx, s.cache, cache.PackagesKey, pkgs, cache.PackagesTTL)
	return pkgs, nil
}

// GetPackage retrieves a package by ID.
func (s *PackageService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// UpdatePackage replaces the non-empty fields of a package.
func (s *PackageService) UpdatePackage(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.Package, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	pkg, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, cache.PackagesKey)
	return pkg, nil
}

// DeletePackage removes a package. Its sub-packages are not deleted.
func (s *PackageService) DeletePackage(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPackageNotFound
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	invalidate(ctx, s.cache, cache.PackagesKey)
	return nil
}

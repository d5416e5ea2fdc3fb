// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"tour-catalog/internal/database"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks tour-catalog/internal/repository PackageRepository,SubPackageRepository,UserRepository,EnquiryRepository

// PackageRepository defines the interface for package data operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error)
	FindAll(ctx context.Context) ([]models.Package, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdatePackageRequest) (*models.Package, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AppendSubPackage(ctx context.Context, id, subPackageID primitive.ObjectID) error
}

// packageRepository implements PackageRepository using MongoDB
type packageRepository struct {
	collection *mongo.Collection
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &packageRepository{
		collection: db.Collection(database.PackagesCollection),
	}
}

// Create inserts a new package with an empty sub-package list
func (r *packageRepository) Create(ctx context.Context, pkg *models.Package) error {
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	if pkg.SubPackages == nil {
		pkg.SubPackages = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		return err
	}

	pkg.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a package by its ID
func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	var pkg models.Package

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}

	normalizePackage(&pkg)
	return &pkg, nil
}

// FindAll returns all packages in storage order
func (r *packageRepository) FindAll(ctx context.Context) ([]models.Package, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}

	if pkgs == nil {
		pkgs = []models.Package{}
	}
	for i := range pkgs {
		normalizePackage(&pkgs[i])
	}

	return pkgs, nil
}

// Update replaces the fields that are provided and non-empty
func (r *packageRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdatePackageRequest) (*models.Package, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Category != nil && *update.Category != "" {
		updateDoc["category"] = *update.Category
	}
	if update.Description != nil && *update.Description != "" {
		updateDoc["description"] = *update.Description
	}

	var pkg models.Package
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}

	normalizePackage(&pkg)
	return &pkg, nil
}

// Delete removes a package. Its sub-packages are left in place.
func (r *packageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrPackageNotFound
	}

	return nil
}

// AppendSubPackage atomically adds a child id to the package's list
func (r *packageRepository) AppendSubPackage(ctx context.Context, id, subPackageID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"subPackages": subPackageID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPackageNotFound
	}

	return nil
}

func normalizePackage(pkg *models.Package) {
	if pkg.SubPackages == nil {
		pkg.SubPackages = []primitive.ObjectID{}
	}
}

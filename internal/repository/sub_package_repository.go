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

// SubPackageRepository defines the interface for sub-package data operations
type SubPackageRepository interface {
	Create(ctx context.Context, sp *models.SubPackage) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubPackage, error)
	FindAll(ctx context.Context) ([]models.SubPackage, error)
	FindByPackageID(ctx context.Context, packageID primitive.ObjectID) ([]models.SubPackage, error)
	FindDeals(ctx context.Context) ([]models.SubPackage, error)
	FindLatest(ctx context.Context, limit int) ([]models.SubPackage, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.SubPackageUpdate) (*models.SubPackage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AppendSubPackage(ctx context.Context, id, childID primitive.ObjectID) error
	PullGalleryImage(ctx context.Context, id, imageID primitive.ObjectID) error
}

// subPackageRepository implements SubPackageRepository using MongoDB
type subPackageRepository struct {
	collection *mongo.Collection
}

// NewSubPackageRepository creates a new SubPackageRepository
func NewSubPackageRepository(db *mongo.Database) SubPackageRepository {
	return &subPackageRepository{
		collection: db.Collection(database.SubPackagesCollection),
	}
}

// Create inserts a new sub-package
func (r *subPackageRepository) Create(ctx context.Context, sp *models.SubPackage) error {
	now := time.Now()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	sp.Normalize()

	result, err := r.collection.InsertOne(ctx, sp)
	if err != nil {
		return err
	}

	sp.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a sub-package by its ID
func (r *subPackageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubPackage, error) {
	var sp models.SubPackage

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSubPackageNotFound
		}
		return nil, err
	}

	sp.Normalize()
	return &sp, nil
}

// FindAll returns every sub-package in storage order
func (r *subPackageRepository) FindAll(ctx context.Context) ([]models.SubPackage, error) {
	return r.find(ctx, bson.M{})
}

// FindByPackageID returns the direct children of a package or sub-package
func (r *subPackageRepository) FindByPackageID(ctx context.Context, packageID primitive.ObjectID) ([]models.SubPackage, error) {
	return r.find(ctx, bson.M{"packageId": packageID})
}

// FindDeals returns the sub-packages flagged as deal of the day
func (r *subPackageRepository) FindDeals(ctx context.Context) ([]models.SubPackage, error) {
	return r.find(ctx, bson.M{"isDealOfTheDay": true})
}

// FindLatest returns up to limit sub-packages, newest first
func (r *subPackageRepository) FindLatest(ctx context.Context, limit int) ([]models.SubPackage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// Update applies replaced scalars and appends to the gallery and pricing lists
// in a single atomic write. Returns the updated document.
func (r *subPackageRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.SubPackageUpdate) (*models.SubPackage, error) {
	set := bson.M{"updatedAt": time.Now()}
	for field, value := range update.Set {
		set[field] = value
	}
	updateDoc := bson.M{"$set": set}

	push := bson.M{}
	if len(update.AppendGalleryImages) > 0 {
		push["galleryImages"] = bson.M{"$each": update.AppendGalleryImages}
	}
	if len(update.AppendPricingDetails) > 0 {
		push["pricingDetails"] = bson.M{"$each": update.AppendPricingDetails}
	}
	if len(push) > 0 {
		updateDoc["$push"] = push
	}

	var sp models.SubPackage
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		updateDoc,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSubPackageNotFound
		}
		return nil, err
	}

	sp.Normalize()
	return &sp, nil
}

// Delete removes only the given sub-package. Parent lists and children are untouched.
func (r *subPackageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrSubPackageNotFound
	}

	return nil
}

// AppendSubPackage atomically adds a child id to the sub-package's list
func (r *subPackageRepository) AppendSubPackage(ctx context.Context, id, childID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"subPackages": childID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrSubPackageNotFound
	}

	return nil
}

// PullGalleryImage removes one gallery entry. The filter matches only when the
// image is present, so a concurrent removal reports ErrGalleryImageNotFound.
func (r *subPackageRepository) PullGalleryImage(ctx context.Context, id, imageID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "galleryImages._id": imageID},
		bson.M{
			"$pull": bson.M{"galleryImages": bson.M{"_id": imageID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrGalleryImageNotFound
	}

	return nil
}

func (r *subPackageRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.SubPackage, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sps []models.SubPackage
	if err := cursor.All(ctx, &sps); err != nil {
		return nil, err
	}

	if sps == nil {
		sps = []models.SubPackage{}
	}
	for i := range sps {
		sps[i].Normalize()
	}

	return sps, nil
}

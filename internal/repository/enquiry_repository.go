package repository

import (
	"context"
	"time"

	"tour-catalog/internal/database"
	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnquiryRepository defines the interface for enquiry data operations
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
	FindAll(ctx context.Context) ([]models.Enquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type enquiryRepository struct {
	collection *mongo.Collection
}

// NewEnquiryRepository creates a new EnquiryRepository
func NewEnquiryRepository(db *mongo.Database) EnquiryRepository {
	return &enquiryRepository{
		collection: db.Collection(database.EnquiriesCollection),
	}
}

// Create stores an enquiry
func (r *enquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	enquiry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, enquiry)
	if err != nil {
		return err
	}

	enquiry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all enquiries, newest first
func (r *enquiryRepository) FindAll(ctx context.Context) ([]models.Enquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enquiries []models.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}

	if enquiries == nil {
		enquiries = []models.Enquiry{}
	}

	return enquiries, nil
}

// Delete removes an enquiry
func (r *enquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrEnquiryNotFound
	}

	return nil
}

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

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetToken(ctx context.Context, tokenHash string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdatePermissions(ctx context.Context, id primitive.ObjectID, update *models.UpdatePermissionsRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SetOTP(ctx context.Context, id primitive.ObjectID, otpHash string, expires time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// the unique index catches a concurrent insert that passed the check above
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByResetToken finds the user holding the given reset token hash.
// Expiry is checked by the caller.
func (r *userRepository) FindByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	if tokenHash == "" {
		return nil, apperrors.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"resetPasswordToken": tokenHash})
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// UpdatePermissions replaces the role and/or the permission flags
func (r *userRepository) UpdatePermissions(ctx context.Context, id primitive.ObjectID, update *models.UpdatePermissionsRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Role != nil {
		updateDoc["role"] = *update.Role
	}
	if update.Permissions != nil {
		updateDoc["permissions"] = *update.Permissions
	}

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdatePassword stores a new password hash and clears any pending OTP or reset token
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{
			"otp":                  "",
			"otpExpires":           "",
			"resetPasswordToken":   "",
			"resetPasswordExpires": "",
		},
	})
}

// SetOTP stores a hashed one-time password, replacing any earlier one
func (r *userRepository) SetOTP(ctx context.Context, id primitive.ObjectID, otpHash string, expires time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"otp": otpHash, "otpExpires": expires, "updatedAt": time.Now()},
	})
}

// SetResetToken consumes the OTP and stores a hashed reset token in its place
func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"resetPasswordToken":   tokenHash,
			"resetPasswordExpires": expires,
			"updatedAt":            time.Now(),
		},
		"$unset": bson.M{"otp": "", "otpExpires": ""},
	})
}

// Delete removes a user from the database
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

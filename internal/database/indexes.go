package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index describes one secondary index the application relies on.
type Index struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptions
}

// Indexes lists every index the repositories expect to exist.
var Indexes = []Index{
	// Login and duplicate detection
	{Collection: UsersCollection, Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Collection: UsersCollection, Keys: bson.D{{Key: "resetPasswordToken", Value: 1}}, Options: options.Index().SetSparse(true)},

	// Children by parent, deal list, latest-first listing
	{Collection: SubPackagesCollection, Keys: bson.D{{Key: "packageId", Value: 1}}},
	{Collection: SubPackagesCollection, Keys: bson.D{{Key: "isDealOfTheDay", Value: 1}}},
	{Collection: SubPackagesCollection, Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},

	{Collection: EnquiriesCollection, Keys: bson.D{{Key: "createdAt", Value: -1}}},
}

// EnsureIndexes creates all Indexes on db. Creating an index that already
// exists with the same definition is a no-op in MongoDB.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range Indexes {
		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.Keys,
			Options: idx.Options,
		})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.Collection, err)
		}
		logrus.WithFields(logrus.Fields{"collection": idx.Collection, "index": name}).Debug("Index ready")
	}
	return nil
}

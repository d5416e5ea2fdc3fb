//go:build api

package testdb

import (
	"context"
	"time"

	"tour-catalog/internal/database"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogCollections are emptied between tests.
var catalogCollections = []string{
	database.PackagesCollection,
	database.SubPackagesCollection,
	database.UsersCollection,
	database.EnquiriesCollection,
}

// MongoContainer wraps a MongoDB testcontainer for API tests.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts a MongoDB testcontainer and creates the application indexes.
// The container lifecycle is owned by TestMain, not by a single test.
func SetupMongoDB(ctx context.Context, dbName string) (*MongoContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	mc := &MongoContainer{
		Container: container,
		URI:       uri,
		Client:    client,
		Database:  client.Database(dbName),
	}

	if err := database.EnsureIndexes(ctx, mc.Database); err != nil {
		_ = mc.Cleanup(ctx)
		return nil, err
	}

	return mc, nil
}

// Cleanup disconnects and terminates the MongoDB container.
func (mc *MongoContainer) Cleanup(ctx context.Context) error {
	if mc.Client != nil {
		_ = mc.Client.Disconnect(ctx)
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// CleanupCollections removes every document from the catalog collections.
// Documents are deleted rather than collections dropped so the indexes survive.
func (mc *MongoContainer) CleanupCollections(ctx context.Context) error {
	for _, name := range catalogCollections {
		if _, err := mc.Database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of documents in collection matching filter.
func (mc *MongoContainer) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return mc.Database.Collection(collection).CountDocuments(ctx, filter)
}

package repository

import (
	"context"
	"testing"
	"time"

	"tour-catalog/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB holds a MongoDB container and a database carrying the production indexes.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts MongoDB, connects, and creates the application indexes so
// unique constraints behave as they do in production.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "Failed to connect to MongoDB")
	require.NoError(t, client.Ping(ctx, nil), "Failed to ping MongoDB")

	db := client.Database("catalog_test_" + time.Now().Format("20060102150405"))
	require.NoError(t, database.EnsureIndexes(ctx, db), "Failed to create indexes")

	return &TestDB{
		Container: container,
		Client:    client,
		Database:  db,
	}
}

// Cleanup drops the database and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection removes all documents but keeps the collection's indexes.
func (tdb *TestDB) ClearCollection(t *testing.T, collectionName string) {
	t.Helper()

	_, err := tdb.Database.Collection(collectionName).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err, "Failed to clear collection %s", collectionName)
}

//go:build api

package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears all state between tests.
// Call this at the start of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	err := ts.MongoDB.CleanupCollections(ctx)
	require.NoError(t, err, "failed to cleanup MongoDB collections")

	err = ts.Redis.FlushDB(ctx)
	require.NoError(t, err, "failed to flush Redis")

	err = ts.MinIO.ClearBucket(ctx)
	require.NoError(t, err, "failed to clear MinIO bucket")

	ts.EnquiryService.Wait()
	ts.Outbox.Reset()
	ts.CleanupQueue.Reset()
}

// CleanupRedis clears only Redis.
func (ts *TestServer) CleanupRedis(t *testing.T) {
	t.Helper()

	err := ts.Redis.FlushDB(context.Background())
	require.NoError(t, err, "failed to flush Redis")
}

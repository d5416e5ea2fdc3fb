package testutil

import (
	"context"
	"time"
)

// TestContext creates a context that bounds a single container round trip.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

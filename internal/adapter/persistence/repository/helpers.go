package repository

import (
	"context"
	"os"
	"time"
)

// Every store round trip is bounded; callers see timeouts as store
// failures.
const storeTimeout = 5 * time.Second

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

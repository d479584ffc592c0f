//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/recipe-cost-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain sets up a shared MongoDB container for all integration tests in
// this package. Reusing one container instead of starting one per test keeps
// the suite's runtime close to a single container startup.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDB creates a MongoDB connection against the shared container with
// a unique database name, so tests stay isolated and can run in parallel.
func setupTestDB(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	return db
}

func cleanupTestDB(t *testing.T, db *MongoDB) {
	if db != nil {
		ctx := context.Background()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	}
}

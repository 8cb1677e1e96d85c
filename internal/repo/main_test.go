package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/hotel-reservations/backend/migrations"
	"github.com/pkordes/hotel-reservations/backend/testutil"
)

// TestMain applies all pending migrations to the test database once for the
// whole test binary, so individual tests never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured; every test skips itself.
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

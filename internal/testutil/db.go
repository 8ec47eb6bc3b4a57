// Package testutil holds helpers for integration tests.
package testutil

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-household/internal/db"
)

// SetupDB connects to the database named by TEST_DB_URL, applies all
// migrations and empties every table. The test is skipped when TEST_DB_URL
// is unset.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(sqlDB); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	if _, err := sqlDB.Exec(`TRUNCATE meal_slots, meal_plans, recipe_ingredients, recipes, ingredients, chores, events CASCADE`); err != nil {
		t.Fatalf("truncate test db: %v", err)
	}
	return sqlDB
}

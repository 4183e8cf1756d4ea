package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// SetupTestDB creates a connection to the test database.
// Override the connection string with TEST_DATABASE_URL.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=localadmin password=localadmin dbname=healhub_test sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	return db
}

// CleanupTestDB truncates every table the service owns so integration tests
// start from a clean slate.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{"appointments", "medical_records", "enquiries", "hospital_contacts", "doctors"}
	for _, table := range tables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Logf("Failed to clean up table %s: %v", table, err)
		}
	}
}

// CreateTestDoctor inserts a doctor row and returns its id, for tests that
// need the appointments foreign key satisfied.
func CreateTestDoctor(t *testing.T, db *sql.DB, name, specialty string) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO doctors (id, name, specialty, rating, review_count, experience, image_url, created_at)
		VALUES ($1, $2, $3, 4.5, 0, '', '', NOW())`,
		id, name, specialty)
	if err != nil {
		t.Fatalf("Failed to create test doctor: %v", err)
	}

	return id
}

// SetupTestTransaction creates a test database connection and begins a
// transaction that is rolled back when the test ends, so tests stay isolated
// without cleanup code.
func SetupTestTransaction(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	db := SetupTestDB(t)

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		db.Close()
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		tx.Rollback()
		db.Close()
	})

	return db, tx
}

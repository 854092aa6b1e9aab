package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  *Store
}

// SetupTestDB connects to the PostgreSQL instance described by the
// TEST_DB_* environment variables and applies migrations. Tests are
// skipped when no database is reachable, unless TEST_DB_REQUIRED is set.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbHost := getenvDefault("TEST_DB_HOST", "localhost")
	dbPort := getenvDefault("TEST_DB_PORT", "5432")
	dbUser := getenvDefault("TEST_DB_USER", "marketplace_user")
	dbPass := getenvDefault("TEST_DB_PASSWORD", "marketplace_password")
	dbName := getenvDefault("TEST_DB_NAME", "marketplace_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		if os.Getenv("TEST_DB_REQUIRED") != "" {
			t.Fatalf("test database unavailable: %v", err)
		}
		t.Skipf("test database unavailable, skipping: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	logger := observability.NewLogger()
	return &TestDB{
		db:     db,
		logger: logger,
		Store:  &Store{db: db, logger: logger},
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runMigrations applies all migration files to the database. Migrations
// are idempotent against an already-migrated schema only when the test
// database starts empty, so Truncate between tests rather than re-running.
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	// Skip when the schema already exists.
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'campaigns')`); err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if exists {
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"activity_events",
			"refund_requests",
			"verifications",
			"messages",
			"payment_requests",
			"join_requests",
			"campaigns",
			"users",
		}
	}

	for _, table := range tables {
		if _, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

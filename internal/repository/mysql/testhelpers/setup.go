package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TestDB wraps a connection to the throwaway test database.
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the test database described by TEST_DB_* env
// variables. Tests are skipped entirely when TEST_DB_HOST is unset, so the
// suite stays runnable without infrastructure.
func SetupTestDB(t *testing.T) *TestDB {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database tests")
	}

	port := getEnv("TEST_DB_PORT", "3306")
	user := getEnv("TEST_DB_USER", "root")
	password := getEnv("TEST_DB_PASSWORD", "root")
	dbname := getEnv("TEST_DB_NAME", "twincities_test")

	// multiStatements lets the migration file run as one script.
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		user, password, host, port, dbname,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	logger := zap.NewNop()

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup truncates all tables between tests.
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	tables := []string{
		"document_tags",
		"tags",
		"documents",
		"indicators",
		"gallery_items",
		"galleries",
		"collaboration_files",
		"collaborations",
		"locations",
		"twin_cities",
	}

	if _, err := tdb.DB.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return err
	}
	for _, table := range tables {
		if _, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
			// Table may not exist yet on a fresh database
			continue
		}
	}
	_, err := tdb.DB.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

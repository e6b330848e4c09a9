package testhelpers

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations runs every .sql file of the migrations directory in
// lexical order. Requires a connection opened with multiStatements=true.
func ApplyMigrations(db *sqlx.DB, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		script, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(script)); err != nil {
			return err
		}
	}
	return nil
}

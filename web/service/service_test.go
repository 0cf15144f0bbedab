package service

import (
	"path/filepath"
	"testing"

	"dragondex/database"
)

// setupDB opens a fresh sqlite database for one test and closes it on
// cleanup. The database package holds a single global handle, so tests in
// this package run against isolated files.
func setupDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}

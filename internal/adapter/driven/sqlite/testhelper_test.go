package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"testing"
)

// memoryDSN names a shared-cache in-memory database after the test so that
// the writer and reader pools see the same data and tests stay isolated.
// journal_mode is left out: WAL does not apply to memory databases.
func memoryDSN(t *testing.T) string {
	return fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()),
	)
}

// setupTestDB opens a migrated in-memory database that is closed when the test ends.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := openDSN(context.Background(), memoryDSN(t), ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := RunMigrations(db.Writer); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

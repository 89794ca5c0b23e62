package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

var testTime = time.Date(2026, 10, 19, 9, 30, 0, 123456789, time.UTC)

func newTestSubmission(id string) model.Submission {
	return model.Submission{
		ID:          id,
		GitHubLink:  "https://github.com/acme/" + id,
		DBUser:      "user-" + id,
		DBPassword:  "sealed-" + id,
		DBName:      "db_" + id,
		Domain:      id + ".example.com",
		SubmittedAt: testTime,
	}
}

func TestSubmissionRepo_AppendAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	sub := newTestSubmission("first")
	require.NoError(t, repo.Append(ctx, sub))

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	got := subs[0]
	assert.Equal(t, int64(1), got.Seq)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, sub.GitHubLink, got.GitHubLink)
	assert.Equal(t, sub.DBUser, got.DBUser)
	assert.Equal(t, sub.DBPassword, got.DBPassword)
	assert.Equal(t, sub.DBName, got.DBName)
	assert.Equal(t, sub.Domain, got.Domain)
	assert.True(t, sub.SubmittedAt.Equal(got.SubmittedAt))
}

func TestSubmissionRepo_ListPreservesAppendOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Append(ctx, newTestSubmission(id)))
	}

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "c", subs[0].ID)
	assert.Equal(t, "a", subs[1].ID)
	assert.Equal(t, "b", subs[2].ID)
}

func TestSubmissionRepo_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)

	subs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubmissionRepo_EmptyFieldsStored(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.Submission{ID: "blank", SubmittedAt: testTime}))

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "", subs[0].Domain)
}

func TestSubmissionRepo_DuplicateIDRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newTestSubmission("dup")))
	err := repo.Append(ctx, newTestSubmission("dup"))
	require.Error(t, err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmissionRepo_ConcurrentAppends(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Append(ctx, newTestSubmission(fmt.Sprintf("w%02d", i)))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, workers)
	for _, sub := range subs {
		assert.Equal(t, "user-"+sub.ID, sub.DBUser, "record fields must not mix between submissions")
		assert.Equal(t, "sealed-"+sub.ID, sub.DBPassword)
	}
}

func TestSubmissionRepo_Ping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepo(db)

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestNewDB_FileBacked(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deploydrop.db")

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(db.Writer))
	assert.Equal(t, path, db.Path())

	repo := NewSubmissionRepo(db)
	require.NoError(t, repo.Append(ctx, newTestSubmission("file")))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 nano", input: "2026-10-19T09:30:00.123456789Z", want: testTime},
		{name: "sqlite current_timestamp", input: "2026-10-19 09:30:00", want: testTime.Truncate(time.Second)},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestSchemaVersion(t *testing.T) {
	db := setupTestDB(t)

	version, err := SchemaVersion(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

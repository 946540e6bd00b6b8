package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"policypulse/internal/models"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := Open("sqlite3", filepath.Join(t.TempDir(), "applicants.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db, "sqlite3"))
	return NewStore(db), db
}

func sampleRecord(first string) *models.ApplicantRecord {
	return &models.ApplicantRecord{
		FirstName:         first,
		LastName:          "Doe",
		Cellphone:         "555-1234",
		Email:             first + "@example.com",
		DisclaimerChecked: true,
	}
}

func TestMigrateIdempotent(t *testing.T) {
	_, db := newTestStore(t)
	require.NoError(t, Migrate(db, "sqlite3"))
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	var last int64
	for _, first := range []string{"Alice", "Bob", "Carol"} {
		id, err := store.Insert(ctx, sampleRecord(first))
		require.NoError(t, err)
		require.Greater(t, id, last)
		last = id
	}

	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestListAllNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, first := range []string{"Alice", "Bob", "Carol"} {
		_, err := store.Insert(ctx, sampleRecord(first))
		require.NoError(t, err)
	}

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "Carol", records[0].FirstName)
	require.Equal(t, "Bob", records[1].FirstName)
	require.Equal(t, "Alice", records[2].FirstName)
	require.False(t, records[0].CreatedAt.Before(records[2].CreatedAt))
}

func TestResumeFieldsRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	withResume := sampleRecord("Dana")
	withResume.ResumePath = "/uploads/abc123.pdf"
	withResume.ResumeOriginalName = "dana-resume.pdf"
	_, err := store.Insert(ctx, withResume)
	require.NoError(t, err)

	_, err = store.Insert(ctx, sampleRecord("Erin"))
	require.NoError(t, err)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// newest first: Erin has no resume, Dana does
	require.False(t, records[0].HasResume())
	require.Empty(t, records[0].ResumeOriginalName)
	require.True(t, records[1].HasResume())
	require.Equal(t, "/uploads/abc123.pdf", records[1].ResumePath)
	require.Equal(t, "dana-resume.pdf", records[1].ResumeOriginalName)
}

func TestListAllEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

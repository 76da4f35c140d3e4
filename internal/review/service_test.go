package review

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/marinfc/tournament-directory/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() Review {
	return Review{
		Tournament:        "Spring Cup",
		AgeGroup:          "U12",
		Gender:            "Girls",
		Level:             "Gold",
		FieldRating:       4,
		CompetitionRating: 5,
		Reviewer:          "Alex",
	}
}

func TestUpsertCreateMintsIDAndTimestamp(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	stored, err := svc.Upsert(ctx, validReview())
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.NotEmpty(t, stored.Timestamp)
	_, perr := time.Parse(time.RFC3339, stored.Timestamp)
	assert.NoError(t, perr, "timestamp should be RFC3339")

	reviews, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, stored.ID, reviews[0].ID)
	assert.Equal(t, "Spring Cup", reviews[0].Tournament)
	assert.Equal(t, 4, reviews[0].FieldRating)
}

func TestUpsertUpdatePreservesProvenance(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Upsert(ctx, validReview())
	require.NoError(t, err)

	// Client edits content and echoes back id + timestamp
	edit := created
	edit.Comments = "Great fields, rough parking"
	edit.FieldRating = 3

	updated, err := svc.Upsert(ctx, edit)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Timestamp, updated.Timestamp, "edits overwrite content, not provenance")

	reviews, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1, "update must not create a second record")
	assert.Equal(t, 3, reviews[0].FieldRating)
	assert.Equal(t, "Great fields, rough parking", reviews[0].Comments)
}

func TestUpsertValidationReportsFirstMissingField(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Review)
		want   string
	}{
		{"missing tournament", func(r *Review) { r.Tournament = "" }, "Missing required field: tournament"},
		{"missing gender", func(r *Review) { r.Gender = "" }, "Missing required field: gender"},
		{"zero field rating", func(r *Review) { r.FieldRating = 0 }, "Missing required field: fieldRating"},
		{"missing reviewer", func(r *Review) { r.Reviewer = "" }, "Missing required field: reviewer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReview()
			tt.mutate(&r)

			_, err := svc.Upsert(ctx, r)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Equal(t, tt.want, ae.Error())
		})
	}

	// Multiple missing fields: the first in required order wins
	r := validReview()
	r.AgeGroup = ""
	r.Reviewer = ""
	_, err := svc.Upsert(ctx, r)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: ageGroup", err.Error())
}

func TestDeleteOwnershipGate(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Upsert(ctx, validReview())
	require.NoError(t, err)

	// A different reviewer is refused and the record survives
	err = svc.Delete(ctx, created.ID, "Sam")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)

	reviews, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1, "forbidden delete must leave the record intact")

	// The owner succeeds
	require.NoError(t, svc.Delete(ctx, created.ID, "Alex"))

	reviews, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestDeleteUnknownID(t *testing.T) {
	svc := NewService(NewMemoryStore())

	err := svc.Delete(context.Background(), "review-123-abcdef", "Alex")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

func TestDeleteMissingID(t *testing.T) {
	svc := NewService(NewMemoryStore())

	err := svc.Delete(context.Background(), "", "Alex")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

func TestListSortsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	older := validReview()
	older.ID = "review-1-aaaaaa"
	older.Timestamp = "2026-01-05T10:00:00Z"
	_, err := svc.Upsert(ctx, older)
	require.NoError(t, err)

	newer := validReview()
	newer.ID = "review-2-bbbbbb"
	newer.Timestamp = "2026-03-01T10:00:00Z"
	newer.Reviewer = "Sam"
	_, err = svc.Upsert(ctx, newer)
	require.NoError(t, err)

	reviews, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "review-2-bbbbbb", reviews[0].ID)
	assert.Equal(t, "review-1-aaaaaa", reviews[1].ID)
}

func TestListSkipsCorruptEntries(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, validReview())
	require.NoError(t, err)

	// A corrupt entry sits alongside the good one
	require.NoError(t, store.Set(ctx, "review-corrupt", []byte("{not json")))

	reviews, err := svc.List(ctx)
	require.NoError(t, err, "a corrupt record must not fail the list")
	assert.Len(t, reviews, 1)
}

func TestNewIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, `^review-\d+-[0-9a-z]{6}$`, id)
		assert.False(t, seen[id], "IDs should not collide under normal load")
		seen[id] = true
	}
}

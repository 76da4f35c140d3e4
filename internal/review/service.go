package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/marinfc/tournament-directory/internal/apperr"
	"github.com/marinfc/tournament-directory/internal/logger"
)

// Service implements the review ledger operations over a Store.
//
// Authorization is intentionally asymmetric: Upsert performs no ownership
// check (any caller who knows an ID may overwrite it), while Delete
// requires the asserted reviewer to match the stored one. That mirrors the
// deployed behavior; hardening upsert would change the observable API and
// is left as an open question.
type Service struct {
	store Store
}

// NewService creates a ledger service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns all reviews sorted newest first. Individually corrupt
// entries are skipped with a warning rather than failing the whole list:
// one bad record must not take down the page.
func (s *Service) List(ctx context.Context) ([]Review, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("listing reviews: %w", err))
	}

	reviews := make([]Review, 0, len(entries))
	for id, data := range entries {
		var r Review
		if err := json.Unmarshal(data, &r); err != nil {
			logger.Warn("skipping unreadable review entry", logger.Fields{
				"id":    id,
				"error": err.Error(),
			})
			continue
		}
		reviews = append(reviews, r)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return parseTimestamp(reviews[i].Timestamp).After(parseTimestamp(reviews[j].Timestamp))
	})

	return reviews, nil
}

// Upsert creates or overwrites a review.
//
// An incoming review without an ID is a create: the server mints the ID
// and timestamp. A review carrying an ID is an update: all content fields
// are overwritten and the caller-supplied timestamp is trusted (the client
// echoes back the original creation time; a missing one is refreshed).
// The stored review is returned.
func (s *Service) Upsert(ctx context.Context, r Review) (Review, error) {
	if verr := Validate(r); verr != nil {
		return Review{}, verr
	}

	if r.ID == "" {
		r.ID = NewID()
		r.Timestamp = time.Now().UTC().Format(time.RFC3339)
	} else if r.Timestamp == "" {
		r.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(r)
	if err != nil {
		return Review{}, apperr.Internal(fmt.Errorf("encoding review: %w", err))
	}

	if err := s.store.Set(ctx, r.ID, data); err != nil {
		return Review{}, apperr.Internal(fmt.Errorf("storing review %s: %w", r.ID, err))
	}

	return r, nil
}

// Delete removes a review by ID after an ownership check: only a request
// asserting the stored reviewer's name may delete the record.
func (s *Service) Delete(ctx context.Context, id, reviewer string) error {
	if id == "" {
		return apperr.Validation("Missing review ID")
	}

	data, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("Review not found")
		}
		return apperr.Internal(fmt.Errorf("loading review %s: %w", id, err))
	}

	var existing Review
	if err := json.Unmarshal(data, &existing); err != nil {
		return apperr.Internal(fmt.Errorf("decoding review %s: %w", id, err))
	}

	if existing.Reviewer != reviewer {
		return apperr.Forbidden("You can only delete your own reviews")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return apperr.Internal(fmt.Errorf("deleting review %s: %w", id, err))
	}

	return nil
}

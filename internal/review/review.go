package review

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/marinfc/tournament-directory/internal/apperr"
)

// Review is one tournament review in the ledger.
//
// ID and Timestamp are server-assigned at creation and immutable
// thereafter: edits overwrite content, not provenance. Reviewer is a
// self-asserted display name and doubles as the ownership token checked
// on delete. Tournament links to the directory by name only; no
// referential integrity is enforced.
type Review struct {
	ID                string `json:"id"`
	Timestamp         string `json:"timestamp"`
	Reviewer          string `json:"reviewer"`
	Tournament        string `json:"tournament"`
	AgeGroup          string `json:"ageGroup"`
	Gender            string `json:"gender"`
	Level             string `json:"level"`
	TournamentDate    string `json:"tournamentDate"`
	FieldType         string `json:"fieldType"`
	FieldRating       int    `json:"fieldRating"`
	CompetitionRating int    `json:"competitionRating"`
	Comments          string `json:"comments"`
}

// Validate checks the required fields in a fixed order and reports the
// first missing one. Ratings count as missing when zero; they are not
// range-validated here (1-5 is a form contract, not a store invariant).
func Validate(r Review) *apperr.AppError {
	checks := []struct {
		name    string
		present bool
	}{
		{"tournament", r.Tournament != ""},
		{"ageGroup", r.AgeGroup != ""},
		{"gender", r.Gender != ""},
		{"level", r.Level != ""},
		{"fieldRating", r.FieldRating != 0},
		{"competitionRating", r.CompetitionRating != 0},
		{"reviewer", r.Reviewer != ""},
	}

	for _, c := range checks {
		if !c.present {
			return apperr.Validation("Missing required field: " + c.name)
		}
	}

	return nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID mints a review identifier: a millisecond time prefix plus a short
// random suffix. Practically unique under normal load, which is all the
// ledger needs; collisions would require two creates in the same
// millisecond drawing the same six characters.
func NewID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("review-%d-%s", time.Now().UnixMilli(), suffix)
}

// parseTimestamp interprets a stored timestamp for sorting. Unparseable
// timestamps sort as the zero time, i.e. oldest.
func parseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}

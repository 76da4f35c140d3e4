// Package filter provides tournament filtering for the directory endpoints.
//
// Filters narrow the merged catalog by free-text query (name or location,
// case-insensitive), an upcoming window, or record source. An empty filter
// matches everything, so handlers can build one straight from optional
// query parameters.
package filter

import (
	"strings"
	"time"

	"github.com/marinfc/tournament-directory/internal/tournament"
)

// upcomingGrace keeps tournaments from the recent past visible: an event
// that ended within the last week is still worth showing.
const upcomingGrace = 7 * 24 * time.Hour

// Filter represents directory filtering criteria.
type Filter struct {
	// Query is matched case-insensitively against name and location.
	Query string

	// Upcoming keeps records whose effective end date falls within the
	// grace window or later. Records without a parseable date are kept:
	// hiding them would make extraction failures invisible.
	Upcoming bool

	// Source keeps only records from one source ("scraped" or "manual").
	Source string
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.Query == "" && !f.Upcoming && f.Source == ""
}

// Matches checks if a record satisfies all active criteria at the given time.
func (f *Filter) Matches(r tournament.Record, now time.Time) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Location), q) {
			return false
		}
	}

	if f.Source != "" && r.Source != f.Source {
		return false
	}

	if f.Upcoming && !isUpcoming(r, now) {
		return false
	}

	return true
}

// Apply returns the records matching all active criteria, preserving order.
func (f *Filter) Apply(records []tournament.Record) []tournament.Record {
	if f.IsEmpty() {
		return records
	}

	now := time.Now()
	matched := make([]tournament.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r, now) {
			matched = append(matched, r)
		}
	}
	return matched
}

// isUpcoming checks the record's effective end date (end, falling back to
// start) against the grace cutoff.
func isUpcoming(r tournament.Record, now time.Time) bool {
	effective := r.EndDate
	if effective == "" {
		effective = r.StartDate
	}

	end, err := time.Parse("2006-01-02", effective)
	if err != nil {
		return true // can't determine, include it
	}

	return !end.Before(now.Add(-upcomingGrace))
}

package tournament

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marinfc/tournament-directory/internal/slug"
)

// Record sources. Scraped records come from the listings scrape; manual
// records are hand-maintained in a separate dataset file.
const (
	SourceScraped = "scraped"
	SourceManual  = "manual"
)

// Record represents one tournament in the directory.
//
// Name is the display and dedup key (case-insensitive for matching,
// case-preserving for display). StartDate and EndDate are ISO calendar
// dates (YYYY-MM-DD); either may be empty when extraction failed.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Location  string `json:"location"`
	URL       string `json:"url"`
	Source    string `json:"source"`
}

// GenerateID creates a deterministic ID for a record from its stable fields.
// The same name, start date, and source always produce the same ID, which is
// what gives records cross-run identity within a single source.
func GenerateID(r Record) string {
	return fmt.Sprintf("%s-%s-%s", r.Source, slug.From(r.Name), r.StartDate)
}

// Key returns the uniqueness key used for dedup and merge:
// the lowercased name joined with the start date.
func Key(r Record) string {
	return strings.ToLower(r.Name) + "-" + r.StartDate
}

// SortByStartDate orders records ascending by start date in place.
// Empty start dates sort first (lexicographic order on ISO dates).
// The sort is stable so records sharing a date keep their insertion order.
func SortByStartDate(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartDate < records[j].StartDate
	})
}

package tournament

import (
	"regexp"
	"strings"
)

// Scraped date text arrives either as "M/D/YYYY - M/D/YYYY" ranges
// (hyphen or en-dash) or as a single "M/D/YYYY". Already-normalized
// ISO dates pass through unchanged so normalization is idempotent.
var (
	dateToken         = `(?:\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})`
	dateRangePattern  = regexp.MustCompile(`(` + dateToken + `)\s*[-–]\s*(` + dateToken + `)`)
	singleDatePattern = regexp.MustCompile(dateToken)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DateRange holds a normalized start/end pair of ISO dates.
// Both fields are empty when no date could be recognized.
type DateRange struct {
	Start string
	End   string
}

// NormalizeDateRange extracts and normalizes a date range from free text.
// A two-date range is recognized first; a single date yields an equal
// start and end; anything else yields an empty range. It never fails on
// malformed input.
func NormalizeDateRange(text string) DateRange {
	if m := dateRangePattern.FindStringSubmatch(text); m != nil {
		return DateRange{Start: ToISO(m[1]), End: ToISO(m[2])}
	}

	if m := singleDatePattern.FindString(text); m != "" {
		iso := ToISO(m)
		return DateRange{Start: iso, End: iso}
	}

	return DateRange{}
}

// ToISO converts an "M/D/YYYY" date to zero-padded "YYYY-MM-DD".
// ISO dates are returned as-is. Anything without exactly three
// slash-separated parts yields an empty string, never an error.
func ToISO(date string) string {
	if isoDatePattern.MatchString(date) {
		return date
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return ""
	}

	return parts[2] + "-" + pad2(parts[0]) + "-" + pad2(parts[1])
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

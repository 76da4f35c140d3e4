// Package slug converts arbitrary tournament names into URL-safe ASCII slugs.
//
// Slugs are the stable part of derived record IDs, so the transformation must
// be deterministic across runs: the same name always yields the same slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// From converts a name into a lowercase hyphenated slug.
// Accented characters are folded to their ASCII base ("Peñasquitos" → "penasquitos"),
// runs of non-alphanumeric characters collapse to a single hyphen, and
// leading/trailing hyphens are trimmed.
func From(name string) string {
	// Decompose accents and strip combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		// Transformation failures are only possible on invalid UTF-8;
		// fall back to the raw input rather than losing the record.
		folded = name
	}

	s := strings.ToLower(folded)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

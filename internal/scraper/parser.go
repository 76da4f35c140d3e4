package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/marinfc/tournament-directory/internal/tournament"
)

// Fallback-pass patterns: a date range near the anchor and a
// "City, CA"-shaped location somewhere in the enclosing block.
var (
	fallbackDateRange = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s*[-–]\s*(\d{1,2}/\d{1,2}/\d{4})`)
	fallbackLocation  = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*),\s*CA`)
)

// parsePass is one extraction strategy applied to a parsed document.
type parsePass func(doc *goquery.Document) []tournament.Record

// passes are tried in order; the first pass yielding any records wins for
// the whole page. The structured pass is precise, the anchor pass trades
// precision for resilience when the listing markup changes shape.
var passes = []parsePass{parseTableRows, parseAnchors}

// ParseListings extracts tournament records from one page of listings HTML.
// Malformed rows never fail the page: a row with an unparseable date simply
// yields empty date fields. An error is returned only when the document
// itself cannot be read.
func ParseListings(r io.Reader) ([]tournament.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, pass := range passes {
		if records := pass(doc); len(records) > 0 {
			return records, nil
		}
	}

	return []tournament.Record{}, nil
}

// parseTableRows scans row-like structures with at least three cells:
// a name (with optional link), a date-range string, and a location.
func parseTableRows(doc *goquery.Document) []tournament.Record {
	records := make([]tournament.Record, 0)

	doc.Find("table.gray-striped-table tbody tr, .event-listing .event-item, table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		nameLink := cells.Eq(0).Find("a").First()
		name := strings.TrimSpace(nameLink.Text())
		if name == "" {
			name = strings.TrimSpace(cells.Eq(0).Text())
		}

		// Header rows and empty-result placeholders are not tournaments
		if name == "" || name == "Event" || strings.Contains(name, "No events found") {
			return
		}

		href, _ := nameLink.Attr("href")
		dates := tournament.NormalizeDateRange(strings.TrimSpace(cells.Eq(1).Text()))

		records = append(records, tournament.Record{
			Name:      name,
			StartDate: dates.Start,
			EndDate:   dates.End,
			Location:  strings.TrimSpace(cells.Eq(2).Text()),
			URL:       absoluteURL(href),
			Source:    tournament.SourceScraped,
		})
	})

	return records
}

// parseAnchors scans hyperlinks into the listings path and mines the
// enclosing block's text for a date range and a location. Used only when
// the structured pass found nothing.
func parseAnchors(doc *goquery.Document) []tournament.Record {
	records := make([]tournament.Record, 0)

	doc.Find(`a[href*="events"]`).Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())

		// Skip navigation links and anything too short to be a name
		if utf8.RuneCountInString(name) < 4 || name == "Events" || strings.Contains(name, "Page") {
			return
		}

		href, _ := a.Attr("href")
		fullText := a.Closest("tr, .event-item, div").Text()

		var start, end string
		if m := fallbackDateRange.FindStringSubmatch(fullText); m != nil {
			start = tournament.ToISO(m[1])
			end = tournament.ToISO(m[2])
		}

		records = append(records, tournament.Record{
			Name:      name,
			StartDate: start,
			EndDate:   end,
			Location:  fallbackLocation.FindString(fullText),
			URL:       absoluteURL(href),
			Source:    tournament.SourceScraped,
		})
	})

	return records
}

// absoluteURL resolves a scraped href against the listings host.
func absoluteURL(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return ListingsHost + href
}

// Package calendar renders the tournament catalog as an iCalendar feed.
//
// Tournaments become all-day VEVENTs so the feed imports cleanly into
// calendar clients regardless of timezone. Records without a parseable
// start date are skipped rather than invented.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/marinfc/tournament-directory/internal/tournament"
)

const uidDomain = "tournaments.marinfc.org"

// GenerateICS renders records as a VCALENDAR document per RFC 5545.
func GenerateICS(records []tournament.Record, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Marin FC//tournament-directory//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("X-WR-CALNAME:Youth Soccer Tournaments\r\n")

	stamp := now.UTC().Format("20060102T150405Z")
	for _, r := range records {
		writeEvent(&ics, r, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, r tournament.Record, stamp string) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return
	}

	end := start
	if r.EndDate != "" {
		if parsed, err := time.Parse("2006-01-02", r.EndDate); err == nil && !parsed.Before(start) {
			end = parsed
		}
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s@%s\r\n", r.ID, uidDomain)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)

	// All-day events: DTEND is exclusive, so it points at the day after
	// the tournament's last day.
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", end.AddDate(0, 0, 1).Format("20060102"))

	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(r.Name))

	if r.Location != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(r.Location))
	}
	if r.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", r.URL)
	}

	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description(r)))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

func description(r tournament.Record) string {
	parts := []string{r.Name}
	if r.Location != "" {
		parts = append(parts, r.Location)
	}
	if r.Source != "" {
		parts = append(parts, "Source: "+r.Source)
	}
	return strings.Join(parts, "\n")
}

// escapeICS escapes text values per RFC 5545 section 3.3.11.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// Package scraper provides HTTP fetching and HTML parsing for GotSoccer
// tournament listings.
//
// The scraper package walks a six-month forward window of first-of-month
// date filters, paginating each month until a page yields no records, and
// extracts tournament names, date ranges, locations, and links. Parsing
// uses a two-pass strategy: a structured row scan first, then a resilient
// anchor scan when the listing markup has changed shape.
package scraper

// Package cli implements the command-line interface for the tournament
// scraper.
//
// The cli package provides the Cobra-based CLI that runs a full scrape,
// persists the dataset snapshot, and reports a run summary in text or
// JSON. It coordinates the scraper and storage packages.
package cli

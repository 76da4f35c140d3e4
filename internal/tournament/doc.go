// Package tournament provides the tournament record model and the directory
// merge algorithm.
//
// The tournament package handles record representation, date normalization,
// and deduplication. Each record is assigned a deterministic slug-based ID
// generated from its source, name, and start date, enabling reliable identity
// across scrape runs. The merge combines scraped and manual datasets under a
// scraped-wins precedence rule keyed by lowercased name plus start date.
package tournament

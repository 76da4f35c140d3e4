// Package storage provides JSON-based persistence for tournament datasets.
//
// The storage package manages the two dataset files consumed by the
// directory: tournaments.json, rewritten by every scrape run, and
// manual-tournaments.json, which is hand-maintained and read-only here.
// Both share the same envelope (lastUpdated, source, state, count,
// tournaments). Missing files load as empty datasets so a fresh checkout
// works before the first scrape.
package storage

// Package review implements the review ledger: a key-value-backed CRUD
// service for tournament reviews.
//
// The ledger supports listing (newest first), idempotent upsert keyed by a
// caller-supplied or server-minted identifier, and ownership-gated delete.
// Identity is a self-asserted reviewer display name; there is no real
// authentication. Durable state lives entirely in the Store, so requests
// are independent and share nothing in memory.
package review

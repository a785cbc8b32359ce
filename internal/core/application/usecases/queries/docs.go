// Package queries holds the read side: order listing with derived fields,
// dashboard metrics, work center listing and per-center conflict lookups.
// Query handlers never write and never take the order locks.
package queries

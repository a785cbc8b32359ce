// Package services provides the domain services of the scheduling core.
//
// The package includes:
//   - ResourceCalendar: per work center reservations with overlap queries
//   - OrderScheduler: the single write path for placement and lifecycle changes
//   - MetricsCalculator: completion, lateness and dashboard aggregates
//   - QueryIndex: filtering, sorting and pagination of order sets
//
// Overlapping reservations are allowed. They surface as conflict lists next to a
// successful result, never as errors.
package services

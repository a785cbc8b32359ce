// Package errs provides standardized error types for the production scheduling service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the scheduling error taxonomy:
//   - ObjectNotFoundError: unknown order, work center or state
//   - InvalidWindowError: a time window whose end precedes its start
//   - UnknownStateError: a lifecycle state code that is not recognized
//   - ConcurrencyConflictError: an optimistic-concurrency failure on save
//   - ObjectIsReferencedError: a deletion blocked by referential integrity
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: field validation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the kind
//
// Scheduling conflicts (overlapping windows) are deliberately absent: they are
// reported as values alongside a successful result, never as errors.
package errs

// Package kernel provides the shared domain primitives of the production scheduling core.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - TimeWindow: a half-open [start, end) interval, or a point reservation when no end is known
//   - Clock: the source of "now", injectable so lifecycle timestamps are deterministic in tests
//
// Value objects are immutable and validate themselves; their zero values are invalid
// and must be built through the provided constructors.
package kernel

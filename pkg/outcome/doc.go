// Package outcome provides a three-severity outcome algebra: Result for
// valueless outcomes and ResultOf[T] for outcomes carrying a produced value.
//
// Highlights:
//   - Ok/Warn/Fail/FailAll and OkOf/WarnOf/FailOf: construct outcomes
//   - Combine: merge two outcomes, escalating severity and concatenating
//     diagnostics in insertion order
//   - Gate: discard a value-producing result when a separate check failed
//   - Map/Switch/Try/Tee/Validate/Finally: compose ResultOf values without
//     leaving the algebra
//
// Failure is a representable value here, never a panic; the severity ordering
// is Ok < Warning < Error and combining always keeps the more severe side.
package outcome

// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of opt.Option[T] values.
//
// It keeps the API surface very small:
//   - From/FromValue: create a Chain
//   - Then/Map: compose option-returning or pure functions
//   - While: repeat a step as long as a predicate holds
//   - Or: pick the first present value between alternatives
//   - Ensure: trigger side effects without changing the option
//   - Reduce: collapse to a concrete value with a fallback
//
// Chain is ideal where lightweight chaining improves readability over
// nested MapOptional calls.
package chain

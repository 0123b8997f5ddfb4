// Package opt provides a generic Option[T] with two variants, Some and None,
// plus a minimal Optional[T] container holding zero or one element.
//
// Highlights:
//   - Some/None/FromMarker: construct Option[T]
//   - Map/MapOptional: transform or chain without double wrapping
//   - Reduce/ReduceWith: collapse to a plain value with an eager or lazy
//     fallback
//   - Downcast: safe narrowing attempt that yields None instead of panicking
//   - Get/MustGet: checked and loud extraction of the contained value
//
// None is unified across element types through the untyped NoneMarker, so
// absence never depends on T having a null state of its own.
package opt

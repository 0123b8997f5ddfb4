package opt

import (
	"reflect"
)

// Marker is the untyped absence value. It coerces into None[T] for any T
// via FromMarker.
type Marker struct{}

// NoneMarker is shared, never mutated.
var NoneMarker = Marker{}

type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func FromMarker[T any](_ Marker) Option[T] {
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the contained value or panics on None. Extracting from
// None is a logic defect, not a data-dependent outcome.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("opt: MustGet on None")
	}
	return o.value
}

// Set reassigns the value of a Some. The variant tag cannot change, so
// calling Set on a None panics.
func (o *Option[T]) Set(value T) {
	if !o.some {
		panic("opt: Set on None")
	}
	o.value = value
}

func (o Option[T]) Reduce(whenNone T) T {
	if o.some {
		return o.value
	}
	return whenNone
}

// ReduceWith is the lazy variant of Reduce: whenNone runs only if the
// option is None, and exactly once.
func (o Option[T]) ReduceWith(whenNone func() T) T {
	if o.some {
		return o.value
	}
	return whenNone()
}

// Equals reports structural equality: two Some compare by their values,
// two None are always equal, a Some never equals a None.
func (o Option[T]) Equals(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	if !o.some {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// Matches reports whether the option equals the absence marker.
func (o Option[T]) Matches(_ Marker) bool {
	return !o.some
}

func Map[In, Out any](o Option[In], onSome func(in In) Out) Option[Out] {
	if o.some {
		return Some(onSome(o.value))
	}
	return None[Out]()
}

// MapOptional chains a function that already returns an Option, without
// double wrapping.
func MapOptional[In, Out any](o Option[In], onSome func(in In) Option[Out]) Option[Out] {
	if o.some {
		return onSome(o.value)
	}
	return None[Out]()
}

// Downcast attempts to narrow the contained value to Out. A Some whose
// runtime value is assignable to Out and non-nil yields Some[Out] with the
// same value; everything else yields None. It never panics.
func Downcast[Out, In any](o Option[In]) Option[Out] {
	if !o.some {
		return None[Out]()
	}

	out, ok := any(o.value).(Out)
	if !ok || IsNil(out) {
		return None[Out]()
	}
	return Some(out)
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

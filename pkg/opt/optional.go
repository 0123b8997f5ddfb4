package opt

import "iter"

// Optional holds zero or one element of T. It is immutable after
// construction and iterates lazily over its contents.
type Optional[T any] struct {
	items []T
}

func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{items: []T{value}}
}

func EmptyOptional[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsEmpty() bool {
	return len(o.items) == 0
}

func (o Optional[T]) Len() int {
	return len(o.items)
}

// All returns a restartable sequence over the contained elements. Each call
// starts a fresh traversal yielding zero or one items.
func (o Optional[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range o.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (o Optional[T]) ToOption() Option[T] {
	if len(o.items) == 0 {
		return None[T]()
	}
	return Some(o.items[0])
}

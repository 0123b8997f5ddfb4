package chain

import (
	"github.com/ib-77/optres/pkg/opt"
)

type Chain[T any] struct {
	o opt.Option[T]
}

func From[T any](o opt.Option[T]) Chain[T] {
	return Chain[T]{o: o}
}

func FromValue[T any](v T) Chain[T] {
	return From(opt.Some(v))
}

func (c Chain[T]) Option() opt.Option[T] {
	return c.o
}

// Then composes functions that already return opt.Option[T]
func (c Chain[T]) Then(onSome func(t T) opt.Option[T]) Chain[T] {
	if c.o.IsNone() {
		return c
	}
	return Chain[T]{o: onSome(c.o.MustGet())}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onSome func(t T) T) Chain[T] {
	if c.o.IsNone() {
		return c
	}
	return Chain[T]{o: opt.Some(onSome(c.o.MustGet()))}
}

func (c Chain[T]) While(onSome func(t T) opt.Option[T],
	while func(t T) bool) Chain[T] {

	for c.o.IsSome() && while(c.o.MustGet()) {
		c = c.Then(onSome)
	}
	return c
}

func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.o.IsSome() {
		return c
	}
	if alternative.o.IsSome() {
		return alternative
	}
	return c
}

// Ensure triggers side effects for presence/absence without changing the option
func (c Chain[T]) Ensure(onSome func(T), onNone func()) Chain[T] {
	if c.o.IsSome() {
		if onSome != nil {
			onSome(c.o.MustGet())
		}
		return c
	}

	if onNone != nil {
		onNone()
	}
	return c
}

// Reduce collapses the chain to a final value, delegating to opt.Reduce
func (c Chain[T]) Reduce(whenNone T) T {
	return c.o.Reduce(whenNone)
}

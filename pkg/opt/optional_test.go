package opt

import (
	"testing"
)

func TestNewOptional(t *testing.T) {
	t.Parallel()
	o := NewOptional("a")
	if o.IsEmpty() || o.Len() != 1 {
		t.Fatalf("expected one element, got: empty=%v, len=%d", o.IsEmpty(), o.Len())
	}
}

func TestEmptyOptional(t *testing.T) {
	t.Parallel()
	o := EmptyOptional[string]()
	if !o.IsEmpty() || o.Len() != 0 {
		t.Fatalf("expected no elements, got: empty=%v, len=%d", o.IsEmpty(), o.Len())
	}
	for range o.All() {
		t.Fatalf("iteration over empty should yield nothing")
	}
}

func TestOptionalIterationIsRestartable(t *testing.T) {
	t.Parallel()
	o := NewOptional(7)

	for range 2 {
		seen := 0
		for v := range o.All() {
			if v != 7 {
				t.Fatalf("expected 7, got: %v", v)
			}
			seen++
		}
		if seen != 1 {
			t.Fatalf("expected exactly one item per traversal, got: %d", seen)
		}
	}
}

func TestOptionalToOption(t *testing.T) {
	t.Parallel()
	if got := NewOptional(3).ToOption().Reduce(-1); got != 3 {
		t.Fatalf("expected 3, got: %v", got)
	}
	if EmptyOptional[int]().ToOption().IsSome() {
		t.Fatalf("expected None from empty container")
	}
}

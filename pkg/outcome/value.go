package outcome

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/optres/pkg/opt"
)

// ResultOf carries a produced value next to the outcome. The value is
// meaningful only while the outcome did not fail; a failed ResultOf holds
// whatever its factory was given, which for FailOf is T's zero value.
type ResultOf[T any] struct {
	Result
	value T
}

func OkOf[T any](value T) ResultOf[T] {
	return ResultOf[T]{
		Result: Ok(),
		value:  value,
	}
}

func WarnOf[T any](value T, format string, args ...any) ResultOf[T] {
	return ResultOf[T]{
		Result: Warn(format, args...),
		value:  value,
	}
}

func FailOf[T any](messages ...string) ResultOf[T] {
	return ResultOf[T]{
		Result: FailAll(messages...),
	}
}

func (r ResultOf[T]) Value() T {
	return r.value
}

// Combine merges two value-carrying results. Severity escalates to the more
// severe side, warnings and errors concatenate left first, and the value is
// taken from the receiver. When the receiver's value is non-nil and differs
// from the other side's, a non-fatal notice goes to the diagnostics sink;
// the merged outcome itself is unaffected.
func (r ResultOf[T]) Combine(other ResultOf[T]) ResultOf[T] {
	if !opt.IsNil(r.value) && !reflect.DeepEqual(r.value, other.value) {
		diag().Warnf("combine: keeping left value %v, dropping mismatching right value %v", r.value, other.value)
	}

	warnings := make([]string, 0, len(r.warnings)+len(other.warnings))
	warnings = append(warnings, r.warnings...)
	warnings = append(warnings, other.warnings...)

	errs := make([]string, 0, len(r.errors)+len(other.errors))
	errs = append(errs, r.errors...)
	errs = append(errs, other.errors...)

	return ResultOf[T]{
		Result: Result{
			severity:  maxSeverity(r.severity, other.severity),
			warnings:  warnings,
			errors:    errs,
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		},
		value: r.value,
	}
}

// Gate discards a value-producing result when a separate check failed: the
// failed check's rendered info becomes the sole error message and the value
// is dropped. A passing check returns the result unchanged.
func Gate[T any](result ResultOf[T], check Result) ResultOf[T] {
	if check.IsError() {
		return FailOf[T](strings.TrimSuffix(check.Info(), ", "))
	}
	return result
}

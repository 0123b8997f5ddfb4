package outcome

import (
	"time"

	"github.com/google/uuid"
)

// From re-types a result, carrying its diagnostics and identity and dropping
// the value.
func From[In, Out any](from ResultOf[In]) ResultOf[Out] {
	return ResultOf[Out]{
		Result: from.Result,
	}
}

func Map[In, Out any](input ResultOf[In],
	onOk func(r In) Out) ResultOf[Out] {

	if input.IsError() {
		return From[In, Out](input)
	}

	return ResultOf[Out]{
		Result: restamp(input.Result),
		value:  onOk(input.value),
	}
}

// Switch moves from ResultOf[In] to ResultOf[Out] through an outcome-returning
// function. The input's warnings come before any the function adds.
func Switch[In, Out any](input ResultOf[In],
	onOk func(r In) ResultOf[Out]) ResultOf[Out] {

	if input.IsError() {
		return From[In, Out](input)
	}

	out := onOk(input.value)

	warnings := make([]string, 0, len(input.warnings)+len(out.warnings))
	warnings = append(warnings, input.warnings...)
	warnings = append(warnings, out.warnings...)

	errs := make([]string, 0, len(input.errors)+len(out.errors))
	errs = append(errs, input.errors...)
	errs = append(errs, out.errors...)

	return ResultOf[Out]{
		Result: Result{
			severity:  maxSeverity(input.severity, out.severity),
			warnings:  warnings,
			errors:    errs,
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		},
		value: out.value,
	}
}

func Try[In, Out any](input ResultOf[In],
	onTryExecute func(r In) (Out, error)) ResultOf[Out] {

	if input.IsError() {
		return From[In, Out](input)
	}

	out, err := onTryExecute(input.value)
	if err != nil {
		failed := From[In, Out](input)
		failed.Result = restamp(failed.Result)
		failed.severity = SeverityError
		failed.errors = append(failed.Errors(), err.Error())
		return failed
	}

	return ResultOf[Out]{
		Result: restamp(input.Result),
		value:  out,
	}
}

func Tee[T any](input ResultOf[T],
	onOk func(r T)) ResultOf[T] {

	if input.IsOk() {
		onOk(input.value)
	}

	return input
}

func Validate[T any](input T,
	validate func(in T) (valid bool, errMsg string)) ResultOf[T] {

	if valid, errMsg := validate(input); !valid {
		return FailOf[T](errMsg)
	}
	return OkOf(input)
}

func Finally[In, Out any](input ResultOf[In],
	onOk func(r In) Out,
	onFail func(errs []string) Out) Out {

	if input.IsOk() {
		return onOk(input.value)
	}
	return onFail(input.Errors())
}

package outcome

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Result struct {
	id        uuid.UUID
	createdAt time.Time
	severity  Severity
	warnings  []string
	errors    []string
}

func Ok() Result {
	return Result{
		severity:  SeverityOk,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Warn(format string, args ...any) Result {
	return Result{
		severity:  SeverityWarning,
		warnings:  []string{message(format, args)},
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail(format string, args ...any) Result {
	return Result{
		severity:  SeverityError,
		errors:    []string{message(format, args)},
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func FailAll(messages ...string) Result {
	return Result{
		severity:  SeverityError,
		errors:    append([]string(nil), messages...),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result) Severity() Severity {
	return r.severity
}

// IsOk reports that the outcome did not fail; a Warning still counts as ok.
func (r Result) IsOk() bool {
	return r.severity != SeverityError
}

func (r Result) IsWarning() bool {
	return r.severity == SeverityWarning
}

func (r Result) IsError() bool {
	return r.severity == SeverityError
}

func (r Result) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

func (r Result) Errors() []string {
	return append([]string(nil), r.errors...)
}

func (r Result) Id() uuid.UUID {
	return r.id
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

// Info renders the error messages when failed, the warning messages when
// warned, and the empty string when ok. Every message is followed by ", ",
// the trailing separator included.
func (r Result) Info() string {
	switch r.severity {
	case SeverityError:
		return joinMessages(r.errors)
	case SeverityWarning:
		return joinMessages(r.warnings)
	default:
		return ""
	}
}

// Combine merges two valueless results by re-wrapping each side as a
// ResultOf[bool] carrying its own IsOk and delegating to the value-carrying
// combine. The more severe side wins; message lists concatenate left first.
func (r Result) Combine(other Result) Result {
	return wrapBool(r).Combine(wrapBool(other)).Result
}

func wrapBool(r Result) ResultOf[bool] {
	return ResultOf[bool]{Result: r, value: r.IsOk()}
}

// restamp gives a derived result its own identity, keeping the diagnostics.
func restamp(r Result) Result {
	r.id = uuid.New()
	r.createdAt = time.Now().UTC()
	return r
}

func joinMessages(messages []string) string {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m)
		b.WriteString(", ")
	}
	return b.String()
}

// message formats only when format args were actually supplied, so a plain
// message containing '%' is never mangled.
func message(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

package outcome

// Reporter is the read side shared by Result and ResultOf.
type Reporter interface {
	// Severity returns the outcome classification
	Severity() Severity
	// Warnings returns the warning messages in insertion order
	Warnings() []string
	// Errors returns the error messages in insertion order
	Errors() []string
	// IsOk returns true unless the outcome failed
	IsOk() bool
	// Info renders the relevant messages as a single string
	Info() string
}

// ValueReporter extends Reporter with access to the produced value
type ValueReporter[T any] interface {
	Reporter
	// Value returns the produced value
	Value() T
}

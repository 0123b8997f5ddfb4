package outcome

// Severity classifies an outcome. The ordering SeverityOk < SeverityWarning
// < SeverityError is load-bearing: Combine keeps the larger of two.
type Severity int

const (
	SeverityOk Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOk:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func maxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

package outcome

import "go.uber.org/zap"

// sink receives the non-fatal combine mismatch notice. It defaults to the
// process-global sugared logger.
var sink *zap.SugaredLogger

// SetDiagnostics replaces the diagnostics sink. Passing nil restores the
// global zap.S() logger.
func SetDiagnostics(l *zap.SugaredLogger) {
	sink = l
}

func diag() *zap.SugaredLogger {
	if sink != nil {
		return sink
	}
	return zap.S()
}

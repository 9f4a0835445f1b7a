package specification

type DebugLogger interface {
	Debug(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}

var debugLogger DebugLogger = discardLogger{}

// SetDebugLogger installs the logger that reports join reuse, join creation
// and folded clauses. A nil logger silences it again.
func SetDebugLogger(logger DebugLogger) {
	if logger == nil {
		logger = discardLogger{}
	}
	debugLogger = logger
}

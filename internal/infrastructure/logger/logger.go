package logger

import (
	"log"

	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

// StdLogger is a simple logger that uses the standard log package.
type StdLogger struct {
	debug bool
}

// NewStdLogger creates a new StdLogger. Debug lines are dropped unless debug is set.
func NewStdLogger(debug bool) usecasecontract.IAppLogger {
	return &StdLogger{debug: debug}
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	log.Fatalf("[FATAL] "+format, args...)
}

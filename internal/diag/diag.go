// Package diag provides the injectable diagnostics side-channel for the
// chomp engine. Parse failure is ordinary data (Success=false on the
// state), so everything here is a debugging aid, never part of the parse
// contract.
package diag

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the minimal logging capability a state carries. Implementations
// must be safe to share across cloned states.
type Logger interface {
	Debug(format string, a ...any)
	Info(format string, a ...any)
	Warn(format string, a ...any)
	Error(format string, a ...any)
	WithFields(fields map[string]any) Logger
}

// StandardLogger is the default Logger implementation, backed by logrus.
type StandardLogger struct {
	logger *logrus.Logger
	fields map[string]any
}

// New returns a StandardLogger writing pretty text to stderr at debug level.
func New() *StandardLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &StandardLogger{logger: l}
}

// NewWithOutput returns a StandardLogger writing to w (for tests).
func NewWithOutput(w io.Writer) *StandardLogger {
	s := New()
	s.logger.SetOutput(w)
	return s
}

// WithFields returns a logger that attaches fields to every entry.
func (s *StandardLogger) WithFields(fields map[string]any) Logger {
	merged := make(map[string]any, len(s.fields)+len(fields))
	for k, v := range s.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &StandardLogger{logger: s.logger, fields: merged}
}

func (s *StandardLogger) entry() *logrus.Entry {
	return s.logger.WithFields(logrus.Fields(s.fields))
}

// Debug logs at debug level.
func (s *StandardLogger) Debug(format string, a ...any) { s.entry().Debugf(format, a...) }

// Info logs at info level.
func (s *StandardLogger) Info(format string, a ...any) { s.entry().Infof(format, a...) }

// Warn logs at warn level.
func (s *StandardLogger) Warn(format string, a ...any) { s.entry().Warnf(format, a...) }

// Error logs at error level.
func (s *StandardLogger) Error(format string, a ...any) { s.entry().Errorf(format, a...) }

// NoOpLogger discards everything. It is the engine default.
type NoOpLogger struct{}

// NewNoOpLogger returns a NoOpLogger.
func NewNoOpLogger() *NoOpLogger { return &NoOpLogger{} }

func (*NoOpLogger) Debug(string, ...any)              {}
func (*NoOpLogger) Info(string, ...any)               {}
func (*NoOpLogger) Warn(string, ...any)               {}
func (*NoOpLogger) Error(string, ...any)              {}
func (n *NoOpLogger) WithFields(map[string]any) Logger { return n }

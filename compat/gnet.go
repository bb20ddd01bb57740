package compat

import (
	"fmt"
	"os"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/xlog"
)

// GnetAdapter wraps a *logger.Logger to implement gnet's logging.Logger
// interface (Debugf/Infof/Warnf/Errorf/Fatalf).
type GnetAdapter struct {
	logger       *logger.Logger
	fatalHandler func(msg string)
}

// GnetOption configures a GnetAdapter at construction.
type GnetOption func(*GnetAdapter)

// WithFatalHandler overrides the default os.Exit(1) fatal behavior.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) { a.fatalHandler = handler }
}

// NewGnetAdapter wraps l to satisfy gnet's logging.Logger.
func NewGnetAdapter(l *logger.Logger, opts ...GnetOption) *GnetAdapter {
	a := &GnetAdapter{
		logger:       l,
		fatalHandler: func(string) { os.Exit(1) },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Debugf implements gnet's logging.Logger.
func (a *GnetAdapter) Debugf(format string, args ...any) { xlog.Debug(a.logger, format, args...) }

// Infof implements gnet's logging.Logger.
func (a *GnetAdapter) Infof(format string, args ...any) { xlog.Info(a.logger, format, args...) }

// Warnf implements gnet's logging.Logger.
func (a *GnetAdapter) Warnf(format string, args ...any) { xlog.Warn(a.logger, format, args...) }

// Errorf implements gnet's logging.Logger.
func (a *GnetAdapter) Errorf(format string, args ...any) { xlog.Error(a.logger, format, args...) }

// Fatalf implements gnet's logging.Logger: logs at error severity, flushes,
// then invokes the fatal handler (os.Exit(1) by default).
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	xlog.Error(a.logger, "%s", msg)
	_ = a.logger.Flush()
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

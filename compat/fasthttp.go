// Package compat adapts a *logger.Logger to the printf-style Logger
// interfaces third-party servers expect, so one of this module's loggers
// can sit behind a framework that knows nothing about it.
//
// Grounded on this file's own teacher version and compat/gnet.go's adapter
// shape (wrap a Logger, detect level from the message when the target
// interface carries no level of its own, delegate formatting), adapted from
// the teacher's variadic key-value Logger methods to this module's xlog
// helpers.
package compat

import (
	"fmt"
	"strings"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/xlog"
)

// FastHTTPAdapter implements fasthttp.Logger (a single Printf(format string,
// args ...any) method), detecting a severity from the message text since
// fasthttp's Logger interface carries none of its own.
type FastHTTPAdapter struct {
	logger        *logger.Logger
	defaultLevel  event.Level
	levelDetector func(string) (event.Level, bool)
}

// FastHTTPOption configures a FastHTTPAdapter at construction.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel overrides the level used when the detector finds none.
func WithDefaultLevel(level event.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.defaultLevel = level }
}

// WithLevelDetector overrides the message-sniffing level detector.
func WithLevelDetector(detector func(string) (event.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.levelDetector = detector }
}

// NewFastHTTPAdapter wraps l to satisfy fasthttp.Logger.
func NewFastHTTPAdapter(l *logger.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	a := &FastHTTPAdapter{logger: l, defaultLevel: event.Info, levelDetector: DetectLevel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Printf implements fasthttp.Logger.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}
	switch level {
	case event.Debug:
		xlog.Debug(a.logger, "%s", msg)
	case event.Warn:
		xlog.Warn(a.logger, "%s", msg)
	case event.Error, event.Fatal:
		xlog.Error(a.logger, "%s", msg)
	default:
		xlog.Info(a.logger, "%s", msg)
	}
}

// DetectLevel sniffs a severity out of common fasthttp log phrasing.
func DetectLevel(msg string) (event.Level, bool) {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "panic"), strings.Contains(lower, "fatal"):
		return event.Fatal, true
	case strings.Contains(lower, "error"), strings.Contains(lower, "failed"):
		return event.Error, true
	case strings.Contains(lower, "warn"):
		return event.Warn, true
	case strings.Contains(lower, "debug"), strings.Contains(lower, "trace"):
		return event.Debug, true
	default:
		return 0, false
	}
}

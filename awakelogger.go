// Package awakelogger is the package-level facade over the default
// registry: Get/Debug/Info/Notice/Warn/Error/Fatal delegate to a
// process-wide *registry.Registry the way application code that doesn't
// want to thread a logger through every call reaches the library.
//
// Grounded on the global defaultLogger and its delegating package-level
// functions in _examples/lixenwraith-log/default.go, generalized from one
// global *Logger to a *registry.Registry so the facade keeps the registry's
// named-logger and root-fallback behavior instead of collapsing back to a
// single instance.
package awakelogger

import (
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logconfig"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/registry"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/xlog"
)

var defaultRegistry = registry.New()

// Get returns the named logger from the default registry, creating it
// (with the default registry's root as parent fallback) on first request.
func Get(name string) *logger.Logger {
	return defaultRegistry.Get(name)
}

// Root returns the default registry's root logger.
func Root() *logger.Logger {
	return defaultRegistry.Root()
}

// LoadConfig loads a logconfig.Config from path and applies it to the
// default registry.
func LoadConfig(path string) error {
	cfg, err := logconfig.Load(path)
	if err != nil {
		return err
	}
	return logconfig.Apply(defaultRegistry, cfg)
}

// Shutdown closes every logger in the default registry, draining pending
// events to their sinks first.
func Shutdown() error {
	return defaultRegistry.Shutdown()
}

// Debug logs a formatted Debug-level message to the root logger.
func Debug(format string, args ...any) { xlog.CaptureAt(Root(), event.Debug, 1, format, args...) }

// Info logs a formatted Info-level message to the root logger.
func Info(format string, args ...any) { xlog.CaptureAt(Root(), event.Info, 1, format, args...) }

// Notice logs a formatted Notice-level message to the root logger.
func Notice(format string, args ...any) { xlog.CaptureAt(Root(), event.Notice, 1, format, args...) }

// Warn logs a formatted Warn-level message to the root logger.
func Warn(format string, args ...any) { xlog.CaptureAt(Root(), event.Warn, 1, format, args...) }

// Error logs a formatted Error-level message to the root logger.
func Error(format string, args ...any) { xlog.CaptureAt(Root(), event.Error, 1, format, args...) }

// Fatal logs a formatted Fatal-level message to the root logger.
func Fatal(format string, args ...any) { xlog.CaptureAt(Root(), event.Fatal, 1, format, args...) }

// SetThreshold changes the named logger's minimum severity, creating the
// logger in the default registry first if it does not exist yet.
func SetThreshold(name string, level event.Level) {
	Get(name).SetThreshold(level)
}

// Package xlog is the call-site macro equivalent: thin, allocation-light
// helper functions that format a message, capture the caller's location,
// and hand the resulting event.Event to a *logger.Logger — the everyday
// call surface over the core, the way application code is meant to reach
// it rather than constructing events by hand.
//
// Grounded on the level-named methods (Debug/Info/Warn/Error and their
// *Trace variants) on _examples/lixenwraith-log/logger.go's Logger, adapted
// from that file's variadic fmt.Sprint-style argument list to
// fmt.Sprintf-style formatting paired with an explicit skip depth, since
// this package sits one frame further from the call site than a method on
// Logger itself would.
package xlog

import (
	"fmt"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
)

// callDepth is the number of stack frames between a caller of, say,
// xlog.Info and event.Capture: Info -> emit -> event.Capture.
const callDepth = 2

func emit(l *logger.Logger, level event.Level, format string, args []any, extraSkip int) {
	if l == nil || level < l.Threshold() {
		return
	}
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	_ = l.Submit(event.Capture(level, message, callDepth+extraSkip))
}

// Debug formats and submits a Debug-level event to l.
func Debug(l *logger.Logger, format string, args ...any) { emit(l, event.Debug, format, args, 0) }

// Info formats and submits an Info-level event to l.
func Info(l *logger.Logger, format string, args ...any) { emit(l, event.Info, format, args, 0) }

// Notice formats and submits a Notice-level event to l.
func Notice(l *logger.Logger, format string, args ...any) { emit(l, event.Notice, format, args, 0) }

// Warn formats and submits a Warn-level event to l.
func Warn(l *logger.Logger, format string, args ...any) { emit(l, event.Warn, format, args, 0) }

// Error formats and submits an Error-level event to l.
func Error(l *logger.Logger, format string, args ...any) { emit(l, event.Error, format, args, 0) }

// Fatal formats and submits a Fatal-level event to l. Unlike the teacher's
// equivalent it does not call os.Exit — fatal severity is the caller's
// decision to act on, not this package's; a logging helper killing the
// process out from under its caller would surprise anyone importing it as
// a library.
func Fatal(l *logger.Logger, format string, args ...any) { emit(l, event.Fatal, format, args, 0) }

// CaptureAt is like Debug/Info/.../Fatal but for a caller that itself wraps
// one of them on behalf of its own caller — a package-level facade, say.
// extraSkip counts the additional stack frames between that wrapper and its
// caller, so the event still reports the original caller's location instead
// of the wrapper's.
func CaptureAt(l *logger.Logger, level event.Level, extraSkip int, format string, args ...any) {
	emit(l, level, format, args, extraSkip)
}

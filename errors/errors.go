// Package logerr defines the sentinel error values the core raises, and the
// wrapping convention used to attach context to them.
//
// Grounded on the fmtErrorf/combineErrors helpers in
// _examples/lixenwraith-log/utility.go: every wrapped error keeps the
// package-qualified prefix and wraps the sentinel with %w so callers can
// still errors.Is against it.
package logerr

import "errors"

var (
	// ErrInvalidArgument is raised for a nil event, nil sink, or nil root on
	// registration.
	ErrInvalidArgument = errors.New("logerr: invalid argument")

	// ErrDuplicateSink is raised when a sink already registered under its
	// own identity is added again.
	ErrDuplicateSink = errors.New("logerr: duplicate sink")

	// ErrUnknownSink is raised when removing a sink that was never added.
	ErrUnknownSink = errors.New("logerr: unknown sink")

	// ErrNoDestination is raised by Submit when a logger has no sinks and
	// no root to fall back to.
	ErrNoDestination = errors.New("logerr: no destination")

	// ErrInvalidCapacity is raised by ring buffer construction for a
	// capacity that cannot be rounded to a usable length.
	ErrInvalidCapacity = errors.New("logerr: invalid capacity")

	// ErrRootAlreadySet is raised by SetRoot when the logger already has a
	// root; the relation is write-once.
	ErrRootAlreadySet = errors.New("logerr: root already set")
)

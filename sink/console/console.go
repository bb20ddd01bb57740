// Package console implements the default sink: a sanitized, pattern-rendered
// line per event, written to os.Stdout or os.Stderr.
//
// Grounded on the console-target selection and buffered-io.Writer storage in
// _examples/lixenwraith-log/logger.go's reconfigure path (the cfg.ConsoleTarget
// "stdout"/"stderr" switch and the atomic.Value-stored sink wrapper), adapted
// from a package-global writer slot to a per-Sink field since this package no
// longer owns a process-singleton logger.
package console

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/pattern"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sanitizer"
)

// Target selects which standard stream a Sink writes to.
type Target int

const (
	Stdout Target = iota
	Stderr
)

// Sink writes rendered, sanitized log lines to a standard stream.
type Sink struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Writer // underlying os.Stdout/os.Stderr, never closed by us

	layout []pattern.Component
	san    *sanitizer.Sanitizer

	buf []byte
}

// Option configures a Sink at construction.
type Option func(*Sink)

// WithTarget selects stdout (the default) or stderr.
func WithTarget(t Target) Option {
	return func(s *Sink) {
		if t == Stderr {
			s.closer = os.Stderr
		} else {
			s.closer = os.Stdout
		}
		s.w = bufio.NewWriter(s.closer)
	}
}

// WithLayout overrides the default rendering layout; see package pattern for
// placeholder syntax.
func WithLayout(layout string) Option {
	return func(s *Sink) {
		s.layout = pattern.Parse(layout)
	}
}

// New constructs a console Sink writing to stdout with the default layout
// and a sanitizer that strips non-printable characters, guarding the
// terminal against control-sequence injection from logged message text.
func New(opts ...Option) *Sink {
	s := &Sink{
		closer: os.Stdout,
		layout: pattern.Parse(pattern.Default),
		san:    sanitizer.New().Policy(sanitizer.PolicyConsole),
		buf:    make([]byte, 0, 256),
	}
	s.w = bufio.NewWriter(s.closer)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append renders a copy of e whose message is sanitized (e itself is left
// untouched), and writes the resulting line to the underlying stream.
func (s *Sink) Append(e *event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sanitized := e.WithMessage(s.san.Sanitize(e.Message()))

	s.buf = s.buf[:0]
	s.buf = pattern.Render(s.buf, s.layout, sanitized)
	s.buf = append(s.buf, '\n')

	_, err := s.w.Write(s.buf)
	return err
}

// Flush flushes buffered bytes to the underlying stream.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// Close flushes remaining bytes. It never closes os.Stdout or os.Stderr.
func (s *Sink) Close() error {
	return s.Flush()
}

// Package rotating implements the size- and age-rotated file sink, backed
// by gopkg.in/natefinch/lumberjack.v2.
//
// Grounded on the rotation knobs in _examples/lixenwraith-log/config.go
// (Directory, Name, Extension, MaxSizeMB, MaxTotalSizeMB, RetentionPeriodHrs)
// and the file-open/rotate/cleanup flow in
// _examples/lixenwraith-log/storage.go, reimplemented on top of lumberjack
// instead of the teacher's hand-rolled createNewLogFile/cleanOldLogs pair —
// lumberjack already owns that file lifecycle and is one of the teacher's
// own indirect dependencies, so promoting it to a direct one retires an
// entire hand-rolled subsystem rather than duplicating it.
package rotating

import (
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/pattern"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sanitizer"
)

// Sink writes sanitized, pattern-rendered lines to a rotating log file.
type Sink struct {
	mu  sync.Mutex
	w   *lumberjack.Logger
	san *sanitizer.Sanitizer

	layout []pattern.Component
	buf    []byte
}

// Option configures a Sink at construction.
type Option func(*Sink)

// WithLayout overrides the default rendering layout.
func WithLayout(layout string) Option {
	return func(s *Sink) { s.layout = pattern.Parse(layout) }
}

// WithMaxSizeMB caps an individual file's size before it is rotated.
// Mirrors the teacher's Config.MaxSizeMB.
func WithMaxSizeMB(mb int) Option {
	return func(s *Sink) { s.w.MaxSize = mb }
}

// WithMaxBackups caps the number of rotated files retained; 0 keeps all.
func WithMaxBackups(n int) Option {
	return func(s *Sink) { s.w.MaxBackups = n }
}

// WithMaxAgeDays deletes rotated files older than this many days; 0
// disables age-based cleanup. Mirrors the teacher's RetentionPeriodHrs,
// expressed in days since that is lumberjack's native unit.
func WithMaxAgeDays(days int) Option {
	return func(s *Sink) { s.w.MaxAge = days }
}

// WithCompress gzip-compresses rotated files.
func WithCompress(compress bool) Option {
	return func(s *Sink) { s.w.Compress = compress }
}

// New constructs a rotating file Sink writing under directory/name.extension,
// with the teacher's 10MB per-file size and no age limit. No total-size cap
// is applied, and every rotated file is kept unless WithMaxBackups is given.
func New(directory, name, extension string, opts ...Option) *Sink {
	s := &Sink{
		w: &lumberjack.Logger{
			Filename: filepath.Join(directory, name+"."+extension),
			MaxSize:  10,
			MaxAge:   0,
		},
		san:    sanitizer.New().Policy(sanitizer.PolicyFile),
		layout: pattern.Parse(pattern.Default),
		buf:    make([]byte, 0, 256),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append renders and sanitizes e, then writes the line; lumberjack rotates
// the underlying file transparently once MaxSize is exceeded.
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

// Flush is a no-op: lumberjack writes synchronously and performs no
// internal buffering that would need flushing.
func (s *Sink) Flush() error {
	return nil
}

// Close closes the current file handle, if one is open.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Close()
}

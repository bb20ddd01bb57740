// Package logger implements the per-logger asynchronous pipeline: the
// submission fast path, level filtering, parent-logger fallback, worker
// lifecycle, and ordered dispatch to sinks.
//
// Grounded on the overall shape of _examples/lixenwraith-log/logger.go and
// state.go (atomic lifecycle flags, one-shot start, synchronous join on
// stop) and on record.go's level-filter-then-enqueue submission path,
// generalized from the teacher's single global channel-backed logger to
// many named loggers each owning a lock-free ring buffer
// (internal/ring.Buffer) and a parent-fallback chain.
package logger

import (
	"runtime"
	"sync"
	"sync/atomic"

	logerr "github.com/AwakeLion-Robot-Lab/awakelion-logger/errors"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/internal/diagnostics"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/internal/ring"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink"
)

// DefaultRingCapacity is the ring buffer size a Logger gets when New is
// called without an explicit capacity.
const DefaultRingCapacity = 1024

// Logger is a named asynchronous pipeline: filter, enqueue, worker, dispatch
// to sinks. The zero value is not usable; construct with New.
type Logger struct {
	name string

	threshold atomic.Int32 // event.Level

	parentMu sync.RWMutex
	parent   *Logger

	sinksMu sync.RWMutex
	sinks   []sink.Sink

	buf *ring.Buffer

	startOnce    sync.Once
	started      atomic.Bool
	running      atomic.Bool
	workerExited atomic.Bool
	workerDone   chan struct{}

	condMu sync.Mutex
	cond   *sync.Cond

	droppedSinceReport atomic.Uint64
	eventsProcessed    atomic.Uint64
	diag               *diagnostics.Reporter

	heartbeat *heartbeat
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithCapacity sets the ring buffer's requested capacity. The actual
// capacity is rounded up to the next power of two, minimum 2.
func WithCapacity(capacity int) Option {
	return func(l *Logger) {
		buf, err := ring.New(capacity)
		if err != nil {
			buf, _ = ring.New(DefaultRingCapacity)
		}
		l.buf = buf
	}
}

// WithThreshold sets the initial level threshold. The default is
// event.Debug, i.e. nothing is filtered until configured otherwise.
func WithThreshold(level event.Level) Option {
	return func(l *Logger) {
		l.threshold.Store(int32(level))
	}
}

// New constructs a stopped Logger with no sinks and no parent.
func New(name string, opts ...Option) *Logger {
	l := &Logger{name: name, diag: &diagnostics.Reporter{}}
	l.threshold.Store(int32(event.Debug))
	l.cond = sync.NewCond(&l.condMu)
	for _, opt := range opts {
		opt(l)
	}
	if l.buf == nil {
		buf, _ := ring.New(DefaultRingCapacity)
		l.buf = buf
	}
	return l
}

// Name returns the logger's immutable name.
func (l *Logger) Name() string { return l.name }

// Threshold returns the current minimum level accepted on submission.
func (l *Logger) Threshold() event.Level {
	return event.Level(l.threshold.Load())
}

// SetThreshold changes the minimum level accepted on submission. It is a
// plain atomic store — no locking, callable from any goroutine.
func (l *Logger) SetThreshold(level event.Level) {
	l.threshold.Store(int32(level))
}

// State reports the logger's current lifecycle state.
func (l *Logger) State() State {
	if !l.started.Load() {
		return Idle
	}
	if l.workerExited.Load() {
		return Stopped
	}
	if l.running.Load() {
		return Running
	}
	return Draining
}

// Submit is the hot path. It rejects a nil event, silently drops an event
// below threshold, and otherwise either enqueues into this logger's ring
// buffer (if it has sinks) or forwards to the root logger (if it has none
// but one is configured). A logger with neither sinks nor a root raises
// ErrNoDestination.
func (l *Logger) Submit(e *event.Event) error {
	if e == nil {
		return logerr.ErrInvalidArgument
	}
	if e.Level() < l.Threshold() {
		return nil
	}

	l.sinksMu.RLock()
	hasSinks := len(l.sinks) > 0
	l.sinksMu.RUnlock()

	if hasSinks {
		l.startOnce.Do(l.startWorker)
		if l.buf.Push(e) {
			l.condMu.Lock()
			l.cond.Signal()
			l.condMu.Unlock()
			return nil
		}
		l.reportDrop()
		return nil
	}

	l.parentMu.RLock()
	root := l.parent
	l.parentMu.RUnlock()
	if root != nil {
		return root.Submit(e)
	}
	return logerr.ErrNoDestination
}

func (l *Logger) reportDrop() {
	n := l.droppedSinceReport.Add(1)
	if n == 1 {
		// First drop of a new burst: report once now rather than per-event,
		// bounding diagnostic volume under sustained overflow. The counter
		// resets the next time the worker successfully drains, via
		// resetDropCounter.
		l.diag.EventsDropped(l.name, 1)
	}
}

func (l *Logger) resetDropCounter() {
	if dropped := l.droppedSinceReport.Swap(0); dropped > 1 {
		l.diag.EventsDropped(l.name, dropped)
	}
}

// startWorker is invoked at most once per Logger, via startOnce, the first
// time Submit finds sinks present.
func (l *Logger) startWorker() {
	l.workerDone = make(chan struct{})
	l.running.Store(true)
	l.started.Store(true)
	go l.workerLoop()
	l.startHeartbeat()
}

// Stop requests the worker to exit once the ring buffer drains, and blocks
// until it has. It is idempotent: calling Stop on an already-stopped or
// never-started Logger is a no-op.
func (l *Logger) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	l.stopHeartbeat()
	l.condMu.Lock()
	l.cond.Broadcast()
	l.condMu.Unlock()
	<-l.workerDone
}

// workerLoop is the single dispatch goroutine for this logger. It pops
// events in FIFO order and hands each to every currently registered sink,
// in registration order, catching any error or panic a sink raises.
func (l *Logger) workerLoop() {
	defer func() {
		l.workerExited.Store(true)
		close(l.workerDone)
	}()

	for {
		l.condMu.Lock()
		for l.running.Load() && l.buf.Len() == 0 {
			l.cond.Wait()
		}
		l.condMu.Unlock()

		if !l.running.Load() && l.buf.Len() == 0 {
			return
		}

		for {
			v, ok := l.buf.Pop()
			if !ok {
				break
			}
			l.dispatch(v.(*event.Event))
		}
		l.resetDropCounter()
	}
}

func (l *Logger) dispatch(e *event.Event) {
	l.eventsProcessed.Add(1)

	l.sinksMu.RLock()
	snapshot := make([]sink.Sink, len(l.sinks))
	copy(snapshot, l.sinks)
	l.sinksMu.RUnlock()

	for _, s := range snapshot {
		l.appendSafely(s, e)
	}
}

func (l *Logger) appendSafely(s sink.Sink, e *event.Event) {
	defer func() {
		if r := recover(); r != nil {
			l.diag.SinkPanicked(l.name, sinkTypeName(s), r)
		}
	}()
	if err := s.Append(e); err != nil {
		l.diag.SinkFailed(l.name, sinkTypeName(s), err)
	}
}

func sinkTypeName(s sink.Sink) string {
	t := typeOf(s)
	if t == "" {
		return "sink"
	}
	return t
}

// AddSink registers s with this logger. Identity is by reference, not by
// type: adding the same sink value twice is rejected with
// ErrDuplicateSink even if a different sink of the same concrete type is
// already present.
func (l *Logger) AddSink(s sink.Sink) error {
	if s == nil {
		return logerr.ErrInvalidArgument
	}
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()
	for _, existing := range l.sinks {
		if existing == s {
			return logerr.ErrDuplicateSink
		}
	}
	l.sinks = append(l.sinks, s)
	return nil
}

// RemoveSink unregisters s. It does not close s: sinks are shared
// collaborators the logger does not own exclusively, and removal from one
// logger must not affect another logger that also holds s.
func (l *Logger) RemoveSink(s sink.Sink) error {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()
	for i, existing := range l.sinks {
		if existing == s {
			l.sinks = append(l.sinks[:i:i], l.sinks[i+1:]...)
			return nil
		}
	}
	return logerr.ErrUnknownSink
}

// ClearSinks removes every sink without closing any of them.
func (l *Logger) ClearSinks() {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()
	l.sinks = nil
}

// Sinks returns a snapshot of the currently registered sinks.
func (l *Logger) Sinks() []sink.Sink {
	l.sinksMu.RLock()
	defer l.sinksMu.RUnlock()
	out := make([]sink.Sink, len(l.sinks))
	copy(out, l.sinks)
	return out
}

// SetRoot configures this logger's parent fallback. The relation is
// write-once: calling SetRoot a second time, even with the same value,
// raises ErrRootAlreadySet.
func (l *Logger) SetRoot(root *Logger) error {
	if root == nil {
		return logerr.ErrInvalidArgument
	}
	l.parentMu.Lock()
	defer l.parentMu.Unlock()
	if l.parent != nil {
		return logerr.ErrRootAlreadySet
	}
	l.parent = root
	return nil
}

// Root returns the configured parent fallback, or nil if none is set.
func (l *Logger) Root() *Logger {
	l.parentMu.RLock()
	defer l.parentMu.RUnlock()
	return l.parent
}

// Flush spin-yields until the ring buffer drains, then flushes every
// registered sink. It is caller-initiated and not on the hot path, so the
// spin is an acceptable cost for a simpler implementation than a second
// synchronization primitive would require.
func (l *Logger) Flush() error {
	for l.buf.Len() > 0 {
		runtime.Gosched()
	}

	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()

	var firstErr error
	for _, s := range l.sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close flushes pending events, stops the worker, and closes every sink
// this logger currently holds. Close is idempotent per sink (Sink.Close
// must be) but Close itself should be called at most once per Logger; the
// registry's Shutdown enforces that by clearing its map before closing.
func (l *Logger) Close() error {
	_ = l.Flush()
	l.Stop()

	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()

	var firstErr error
	for _, s := range l.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.sinks = nil
	return firstErr
}

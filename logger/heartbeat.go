// Grounded on the periodic self-statistics emitted by
// _examples/lixenwraith-log/heartbeat.go's handleHeartbeat (proc-level
// counters: events processed, dropped, uptime), trimmed of that file's
// disk- and sys-level tiers since this Logger has no notion of its own
// disk footprint — that belongs to the rotating sink, not the core
// pipeline — and reduced to the one piece of state every Logger actually
// has: how much it has processed since it started, and how many events it
// has dropped since the worker last drained (the burst counter that
// resetDropCounter clears).
package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

// heartbeat periodically submits a self-describing Notice-level event back
// through its own Logger, letting whatever sinks are already attached
// double as a health-check surface.
type heartbeat struct {
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	startedAt time.Time
}

// WithHeartbeat enables a periodic self-statistics event, submitted back
// through the Logger itself at the given interval. The ticker starts with
// the worker, on the first Submit that finds sinks; a Logger that never
// receives a submission emits no heartbeat. Disabled (the default) when
// interval is zero or negative.
func WithHeartbeat(interval time.Duration) Option {
	return func(l *Logger) {
		if interval <= 0 {
			return
		}
		l.heartbeat = &heartbeat{interval: interval, stop: make(chan struct{}), done: make(chan struct{})}
	}
}

func (l *Logger) startHeartbeat() {
	if l.heartbeat == nil {
		return
	}
	l.heartbeat.startedAt = time.Now()
	go l.runHeartbeat()
}

func (l *Logger) runHeartbeat() {
	h := l.heartbeat
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			l.emitHeartbeat()
		}
	}
}

func (l *Logger) emitHeartbeat() {
	h := l.heartbeat
	uptime := time.Since(h.startedAt)
	message := fmt.Sprintf("heartbeat logger=%s processed=%d dropped=%d uptime=%s",
		l.name, l.eventsProcessed.Load(), l.droppedSinceReport.Load(), uptime.Round(time.Second))
	_ = l.Submit(event.Capture(event.Notice, message, 0))
}

func (l *Logger) stopHeartbeat() {
	if l.heartbeat == nil {
		return
	}
	l.heartbeat.stopOnce.Do(func() { close(l.heartbeat.stop) })
	<-l.heartbeat.done
}

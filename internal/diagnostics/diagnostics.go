// Package diagnostics implements the core's only direct output surface: the
// fallback error stream a logger writes to when a sink raises, or when it
// drops events for a full ring buffer.
//
// Grounded on the internalLog helper in
// _examples/lixenwraith-log/record.go (a stderr-only diagnostic writer
// gated by a config flag), generalized from fmt.Fprintf to a structured
// go.uber.org/zap logger — the teacher's go.mod already pulls in zap
// transitively; this gives it a direct, exercised home instead of leaving
// it an unused indirect dependency.
package diagnostics

import (
	"sync"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// Reporter writes one diagnostic line per failure the core encounters
// internally. It is used from the worker, except for the first drop of an
// overflow burst, which Submit reports on the producer's path.
type Reporter struct {
	once sync.Once
	log  *zap.Logger
}

// ensure lazily builds the zap logger backing a Reporter. It
// is built lazily, and once per Reporter, so that constructing a Logger
// never pays zap's setup cost unless a failure actually needs reporting.
func (r *Reporter) ensure() *zap.Logger {
	r.once.Do(func() {
		l, err := zap.NewProduction(zap.WithCaller(false))
		if err != nil {
			l = zap.NewNop()
		}
		r.log = l
	})
	return r.log
}

// SinkFailed reports that a sink's Append returned an error. It
// never returns an error itself and never panics — a broken diagnostic path
// must not take down the worker loop it is reporting on behalf of.
func (r *Reporter) SinkFailed(loggerName string, sinkType string, err error) {
	defer recoverAndDiscard()
	r.ensure().Warn("sink operation failed",
		zap.String("logger", loggerName),
		zap.String("sink", sinkType),
		zap.Error(err),
	)
}

// SinkPanicked reports that a sink's Append panicked; the worker recovers
// the panic and continues dispatching to the remaining sinks.
func (r *Reporter) SinkPanicked(loggerName string, sinkType string, recovered any) {
	defer recoverAndDiscard()
	r.ensure().Error("sink panicked",
		zap.String("logger", loggerName),
		zap.String("sink", sinkType),
		zap.String("recovered", spew.Sdump(recovered)),
	)
}

// EventsDropped reports a burst of ring-buffer-full drops, at most twice per
// burst (its first drop, then its total once the worker drains) rather than
// once per event, bounding diagnostic volume under sustained
// overflow the way the teacher's DroppedLogs counter-and-report in
// record.go coalesces drop reports.
func (r *Reporter) EventsDropped(loggerName string, count uint64) {
	defer recoverAndDiscard()
	r.ensure().Warn("events dropped, ring buffer full",
		zap.String("logger", loggerName),
		zap.Uint64("count", count),
	)
}

func recoverAndDiscard() {
	_ = recover()
}

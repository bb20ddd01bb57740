// Package sink defines the contract the logger pipeline talks to; concrete
// sinks (console, rotating file, remote HTTP collector) live in sibling
// packages under sink/.
//
// Grounded on the io.Writer-wrapping "sink" type in
// _examples/lixenwraith-log/state.go and type.go, generalized to the
// append/flush/close contract the specification requires instead of a bare
// io.Writer, so a sink can own buffering, rotation, or a network connection.
package sink

import "github.com/AwakeLion-Robot-Lab/awakelion-logger/event"

// Sink is a destination for rendered log events. Implementations must be
// safe for concurrent Append calls from at most one worker goroutine plus
// any user-driven Flush — i.e. a sink serializes its own internal state,
// the logger never does it on the sink's behalf.
type Sink interface {
	// Append renders e and writes it to the sink's target. It may buffer
	// internally. An error here is caught by the logger's worker and
	// reported to the fallback error stream; it is never propagated to the
	// producer that submitted the event.
	Append(e *event.Event) error

	// Flush forces any buffered content out to the sink's target.
	Flush() error

	// Close releases any resource the sink owns (file handle, network
	// connection). It is idempotent: calling it more than once must not
	// error or panic. The logger calls Close once, after a final Flush,
	// when the logger itself is closed; removing a sink does not close it.
	Close() error
}

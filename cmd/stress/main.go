// Command stress hammers one logger from many goroutines to exercise the
// ring buffer's overflow-drop path and the worker's drain-on-stop
// guarantee under real contention.
//
// Grounded on the teacher's cmd/stress/main.go (many worker goroutines,
// random burst sizes, a final summary of processed vs. dropped counts),
// adapted from the teacher's TOML-driven config bootstrap to a direct
// logger.New with a small ring capacity, so overflow is reachable in a
// few seconds instead of requiring a deliberately undersized production
// config.
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink"
)

const (
	numWorkers      = 200
	eventsPerWorker = 2000
)

type countingSink struct {
	count atomic.Uint64
}

func (c *countingSink) Append(e *event.Event) error { c.count.Add(1); return nil }
func (c *countingSink) Flush() error                { return nil }
func (c *countingSink) Close() error                { return nil }

var _ sink.Sink = (*countingSink)(nil)

func main() {
	l := logger.New("stress", logger.WithCapacity(64))
	s := &countingSink{}
	if err := l.AddSink(s); err != nil {
		panic(err)
	}

	start := time.Now()
	var submitted, rejected atomic.Uint64

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < eventsPerWorker; i++ {
				e := event.Capture(event.Info, fmt.Sprintf("worker %d event %d", id, i), 0)
				if err := l.Submit(e); err != nil {
					rejected.Add(1)
					continue
				}
				submitted.Add(1)
			}
		}(w)
	}
	wg.Wait()

	if err := l.Close(); err != nil {
		panic(err)
	}

	elapsed := time.Since(start)
	fmt.Printf("submitted=%d rejected=%d appended=%d elapsed=%s\n",
		submitted.Load(), rejected.Load(), s.count.Load(), elapsed)
}

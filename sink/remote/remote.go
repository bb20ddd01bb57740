// Package remote implements a sink that batches events as JSON and ships
// them to a collector over HTTP, using a *fasthttp.Client.
//
// Grounded on the teacher's own dependency on github.com/valyala/fasthttp
// (_examples/lixenwraith-log/compat/fasthttp.go, exercised there as an
// fasthttp.Server's Logger), exercised here from the client side instead:
// the same library, the outbound half the teacher never needed because it
// only ever sat behind a server, not in front of a remote collector.
package remote

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

// wireEvent is the JSON shape posted to the collector: a deliberately
// narrow projection of event.Event, independent of the core's in-process
// representation so the wire format can evolve without touching it.
type wireEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Goroutine int64     `json:"goroutine"`
}

// Sink batches events and flushes them to a remote collector, either when
// the batch reaches BatchSize or FlushInterval elapses, whichever comes
// first.
type Sink struct {
	url    string
	client *fasthttp.Client

	mu      sync.Mutex
	pending []wireEvent
	closed  bool

	batchSize     int
	flushInterval time.Duration
	threshold     event.Level

	flushTimer *time.Timer
	stop       chan struct{}
	stopped    chan struct{}
}

// Option configures a Sink at construction.
type Option func(*Sink)

// WithBatchSize overrides the default batch size of 100.
func WithBatchSize(n int) Option {
	return func(s *Sink) { s.batchSize = n }
}

// WithFlushInterval overrides the default 2-second flush timer.
func WithFlushInterval(d time.Duration) Option {
	return func(s *Sink) { s.flushInterval = d }
}

// WithTimeout overrides the per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(s *Sink) { s.client.ReadTimeout = d; s.client.WriteTimeout = d }
}

// New constructs a remote Sink posting batched events to url.
func New(url string, opts ...Option) *Sink {
	s := &Sink{
		url:           url,
		client:        &fasthttp.Client{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		batchSize:     100,
		flushInterval: 2 * time.Second,
		threshold:     event.Debug,
		stop:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.flushTimer = time.AfterFunc(s.flushInterval, s.timerFlush)
	return s
}

// SetThreshold narrows what this sink accepts independently of its
// logger's own threshold, e.g. to ship only Warn-and-above to a remote
// collector while the local console sink stays at Debug.
func (s *Sink) SetThreshold(level event.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = level
}

// Append enqueues e for the next batch, flushing immediately if the batch
// is now full.
func (s *Sink) Append(e *event.Event) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if e.Level() < s.threshold {
		s.mu.Unlock()
		return nil
	}
	src := e.Source()
	s.pending = append(s.pending, wireEvent{
		Timestamp: e.Timestamp(),
		Level:     e.LevelString(),
		Message:   e.Message(),
		File:      src.File,
		Line:      src.Line,
		Goroutine: e.GoroutineID(),
	})
	full := len(s.pending) >= s.batchSize
	s.mu.Unlock()

	if full {
		return s.Flush()
	}
	return nil
}

func (s *Sink) timerFlush() {
	_ = s.Flush()
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		s.flushTimer.Reset(s.flushInterval)
	}
}

// Flush posts any pending events and clears the batch, retrying once with
// a short backoff on transport failure before reporting an error.
func (s *Sink) Flush() error {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	body, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			time.Sleep(200 * time.Millisecond)
		}
		if lastErr = s.post(body); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (s *Sink) post(body []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	return s.client.Do(req, resp)
}

// Close flushes any remaining batch and stops the flush timer.
func (s *Sink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.flushTimer.Stop()
	return s.Flush()
}

// Package ring implements a bounded, lock-free, multi-producer/multi-consumer
// queue of *event.Event pointers using Vyukov-style per-slot sequence counters.
//
// Grounded on the SPSC sequence-counter ring in
// _examples/other_examples/codewanderer42820-evm_triarb__ring.go, generalized from
// single-producer/single-consumer to the multi-producer/multi-consumer CAS protocol
// described for the ring in _examples/other_examples/willunylabs-wand__ringbuffer.go,
// and cache-line padded the way both of those and lixenwraith/log's state.go isolate
// hot atomics.
package ring

import (
	"fmt"
	"sync/atomic"

	logerr "github.com/AwakeLion-Robot-Lab/awakelion-logger/errors"
)

// cell is one slot of the ring. seq coordinates producers and consumers without
// locks: at rest seq equals the slot's next absolute write position while the slot
// is free, or that position plus one once a value has been published and not yet
// read out. Reading the value out sets seq to the position one lap (the buffer
// length) later.
type cell struct {
	seq     atomic.Uint64
	payload any
}

const cacheLinePad = 64 - 8 // one uint64 already occupies 8 bytes of the line

// Buffer is a fixed-capacity lock-free MPMC FIFO. The zero value is not usable;
// construct with New.
type Buffer struct {
	writeIdx atomic.Uint64
	_        [cacheLinePad]byte

	readIdx atomic.Uint64
	_       [cacheLinePad]byte

	mask  uint64
	cells []cell
}

// New allocates a ring buffer whose real length is the next power of two greater
// than or equal to max(requested, 2). A capacity that cannot be rounded to a
// usable length is reported by wrapping logerr.ErrInvalidCapacity.
func New(requested int) (*Buffer, error) {
	if requested < 0 {
		return nil, fmt.Errorf("ring: invalid capacity %d: %w", requested, logerr.ErrInvalidCapacity)
	}
	length := nextPowerOfTwo(requested)
	if length < 2 {
		length = 2
	}
	if length > (1 << 30) {
		// length*elementSize must not overflow the address space; any Go slice
		// this large is already well past a sane logging buffer, so reject it
		// the same way the constructor rejects a negative request.
		return nil, fmt.Errorf("ring: invalid capacity %d: %w", requested, logerr.ErrInvalidCapacity)
	}

	b := &Buffer{
		mask:  uint64(length - 1),
		cells: make([]cell, length),
	}
	for i := range b.cells {
		b.cells[i].seq.Store(uint64(i))
	}
	return b, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 2
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Cap returns the ring's real capacity (always a power of two, at least 2).
func (b *Buffer) Cap() int {
	return int(b.mask) + 1
}

// Push attempts to enqueue v. It returns false without blocking if the ring is
// full; the value is then dropped by the caller.
func (b *Buffer) Push(v any) bool {
	for {
		write := b.writeIdx.Load()
		c := &b.cells[write&b.mask]
		seq := c.seq.Load()

		diff := int64(seq - write)
		switch {
		case diff == 0:
			if b.writeIdx.CompareAndSwap(write, write+1) {
				c.payload = v
				c.seq.Store(write + 1)
				return true
			}
			// CAS lost the race with another producer; reload and retry.
		case diff < 0:
			return false
		default:
			// Another producer has reserved this slot but not yet published;
			// reload and retry.
		}
	}
}

// Pop attempts to dequeue the oldest value. It returns (nil, false) without
// blocking if the ring is empty.
func (b *Buffer) Pop() (any, bool) {
	for {
		read := b.readIdx.Load()
		c := &b.cells[read&b.mask]
		seq := c.seq.Load()

		diff := int64(seq - (read + 1))
		switch {
		case diff == 0:
			if b.readIdx.CompareAndSwap(read, read+1) {
				v := c.payload
				c.payload = nil
				c.seq.Store(read + uint64(b.Cap()))
				return v, true
			}
			// Another consumer beat us to this slot; reload and retry.
		case diff < 0:
			return nil, false
		default:
			// Writer has reserved the slot but not finished publishing, or
			// another reader has already advanced past it; reload and retry.
		}
	}
}

// Len returns an instantaneous, possibly stale estimate of queue depth. It is
// exact only in the absence of concurrent mutation, and is always <= Cap().
func (b *Buffer) Len() int {
	write := b.writeIdx.Load()
	read := b.readIdx.Load()
	n := int(write - read)
	if n < 0 {
		return 0
	}
	if cap := b.Cap(); n > cap {
		return cap
	}
	return n
}

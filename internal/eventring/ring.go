// Package eventring implements a small fixed-capacity ring buffer used
// to decouple a Publisher adapter's slow transport (NATS, a websocket
// fan-out) from the order book's synchronous, non-blocking call path.
//
// The book's publisher contract requires lossless in-process delivery:
// a slow subscriber must never be able to stall matching. A bounded
// queue with overflow treated as fatal is one of the two choices the
// spec leaves to the integrator (the other being an unbounded queue
// sized only by available memory); this package implements the bounded
// choice, grounded on the small ring-buffer transports used elsewhere
// in the retrieved pack for exactly this kind of in-process fan-out.
package eventring

import (
	"sync"

	"go.uber.org/zap"
)

// Ring is a fixed-capacity, single-producer/single-consumer FIFO of
// values of type T. Push never blocks: once the ring is full, Push
// logs and panics rather than silently dropping or stalling the
// producer, per the "overflow = fatal" policy.
type Ring[T any] struct {
	mu       sync.Mutex
	buf      []T
	head     int // next slot to read
	tail     int // next slot to write
	count    int
	capacity int
	logger   *zap.Logger
}

// New creates a Ring with room for capacity elements. capacity must be
// positive.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("eventring: capacity must be positive")
	}
	return &Ring[T]{buf: make([]T, capacity), capacity: capacity, logger: zap.NewNop()}
}

// SetLogger attaches a logger used to record the overflow condition
// before Push panics. The default is zap.NewNop().
func (r *Ring[T]) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.mu.Lock()
	r.logger = logger
	r.mu.Unlock()
}

// Push enqueues v. It panics if the ring is already at capacity: a
// full ring means the consumer is not draining fast enough, and the
// publisher contract treats that as a fatal condition rather than a
// recoverable one.
func (r *Ring[T]) Push(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == r.capacity {
		r.logger.Error("eventring: ring buffer overflow, consumer is not draining",
			zap.Int("capacity", r.capacity))
		panic("eventring: ring buffer overflow, consumer is not draining")
	}
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % r.capacity
	r.count++
}

// Pop removes and returns the oldest value. ok is false if the ring is
// empty.
func (r *Ring[T]) Pop() (v T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return v, false
	}
	v = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero
	r.head = (r.head + 1) % r.capacity
	r.count--
	return v, true
}

// Len returns the number of buffered values.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Drain pops and passes every currently buffered value to f, in FIFO
// order, stopping early if f returns false.
func (r *Ring[T]) Drain(f func(T) bool) {
	for {
		v, ok := r.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

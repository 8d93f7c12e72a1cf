package pds

import (
	"sync"
	"sync/atomic"
)

// Published hands a persistent container to other goroutines safely:
// Store publishes a new version with a happened-before guarantee over
// any later Load, without locking inside the container itself. A
// writer still needs its own synchronization against concurrent
// writers (see PublishedWriter); Published alone only guarantees safe
// concurrent reads of whatever was last stored.
type Published[T any] struct {
	ptr atomic.Pointer[T]
}

// NewPublished wraps an initial value for publication.
func NewPublished[T any](v T) *Published[T] {
	p := new(Published[T])
	p.ptr.Store(&v)
	return p
}

// Load returns the most recently published value.
func (p *Published[T]) Load() T {
	return *p.ptr.Load()
}

// Store publishes v, making it visible to any subsequent Load from any
// goroutine.
func (p *Published[T]) Store(v T) {
	p.ptr.Store(&v)
}

// PublishedWriter serializes writers over a Published value while
// leaving readers lock-free, mirroring the single-writer/many-reader
// discipline a copy-on-write container is built for: build the next
// version from the prior one, then atomically swap it in.
type PublishedWriter[T any] struct {
	published *Published[T]
	mutex     sync.Mutex
}

// NewPublishedWriter wraps p for serialized writes. p must not be
// written to directly while a PublishedWriter is in use for it.
func NewPublishedWriter[T any](p *Published[T]) *PublishedWriter[T] {
	return &PublishedWriter[T]{published: p}
}

// Update applies f to the currently published value and publishes the
// result, excluding other writers for the duration but never blocking
// concurrent readers.
func (w *PublishedWriter[T]) Update(f func(T) T) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	old := w.published.Load()
	w.published.Store(f(old))
}

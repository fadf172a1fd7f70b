package chat

import (
	"context"
	"iter"
	"sync"
)

// Stream is the consumer side of a streamed completion.
//
// Fragments are queued without bound by a single producer goroutine, so the
// producer never waits on the consumer. Next reports false once the producer
// has finished and every queued fragment has been read. Closing the stream
// from the consumer side discards queued fragments and stops the producer.
type Stream struct {
	mu      sync.Mutex
	items   []string
	closed  bool
	dropped bool
	err     error

	ready     chan struct{}
	end       chan struct{}
	quit      chan struct{}
	done      chan struct{}
	endOnce   sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
}

func newStream(cancel context.CancelFunc) *Stream {
	return &Stream{
		ready:  make(chan struct{}, 1),
		end:    make(chan struct{}),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Next blocks until the next fragment is available. It returns false when the
// stream is complete, including after Close.
func (s *Stream) Next() (string, bool) {
	for {
		s.mu.Lock()
		if s.dropped {
			s.mu.Unlock()
			return "", false
		}
		if len(s.items) > 0 {
			fragment := s.items[0]
			s.items[0] = ""
			s.items = s.items[1:]
			s.mu.Unlock()
			return fragment, true
		}
		if s.closed {
			s.mu.Unlock()
			return "", false
		}
		s.mu.Unlock()

		select {
		case <-s.ready:
		case <-s.end:
		case <-s.quit:
		}
	}
}

// All returns an iterator over the remaining fragments.
// Breaking out of the loop closes the stream.
func (s *Stream) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			fragment, ok := s.Next()
			if !ok {
				return
			}
			if !yield(fragment) {
				s.Close()
				return
			}
		}
	}
}

// Close abandons the stream. Queued fragments are discarded and the producer
// unwinds at its next push or as soon as its pending network read is
// cancelled. Close is idempotent and safe to call after completion.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.dropped = true
		s.items = nil
		s.mu.Unlock()
		close(s.quit)
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// Done is closed once the producer goroutine has exited and released the
// vendor connection.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns the transport error that ended the stream early. It is nil while
// the stream is running, after a normal end, and after the consumer closed it.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// push queues a fragment. It reports false once the consumer has closed the stream.
func (s *Stream) push(fragment string) bool {
	s.mu.Lock()
	if s.dropped {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items, fragment)
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
	return true
}

func (s *Stream) isDropped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// finish closes the sending side of the queue and records the terminal error.
func (s *Stream) finish(err error) {
	s.endOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.err = err
		s.mu.Unlock()
		close(s.end)
	})
}

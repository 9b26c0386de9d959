package bridge

import "sync"

// mailbox is an unbounded FIFO in front of a channel, so the read loop never waits on a slow
// consumer that may itself be waiting for a call result.
type mailbox[T any] struct {
	mu     sync.Mutex
	queue  []T
	closed bool
	wake   chan struct{}
	out    chan T
	abort  <-chan struct{}
}

func newMailbox[T any](abort <-chan struct{}) *mailbox[T] {
	m := &mailbox[T]{
		wake:  make(chan struct{}, 1),
		out:   make(chan T),
		abort: abort,
	}
	go m.pump()
	return m
}

func (m *mailbox[T]) push(v T) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, v)
	m.mu.Unlock()
	m.signal()
}

// close lets the queued values drain, then closes the output channel.
func (m *mailbox[T]) close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.signal()
}

func (m *mailbox[T]) signal() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *mailbox[T]) pump() {
	defer close(m.out)

	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			closed := m.closed
			m.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-m.wake:
			case <-m.abort:
				return
			}
			continue
		}
		next := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()

		select {
		case m.out <- next:
		case <-m.abort:
			return
		}
	}
}

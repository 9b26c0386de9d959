package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
)

const maxLineBytes = 4 << 20

type response struct {
	result json.RawMessage
	err    error
}

// Bridge speaks newline-delimited JSON with a protocol sidecar. It implements both the social
// client and the trade session factory; Serve must be running for any call to complete.
type Bridge struct {
	r      io.Reader
	logger *slog.Logger
	logOn  LogOnDetails

	writeMu sync.Mutex
	w       io.Writer

	nextID   atomic.Uint64
	loggedOn atomic.Bool

	mu       sync.Mutex
	pending  map[uint64]chan response
	sessions map[domain.UserID]*Session
	closed   bool

	events *mailbox[domain.Event]
	done   chan struct{}
	stop   chan struct{}
}

type Option func(*Bridge)

func WithLogOnDetails(details LogOnDetails) Option {
	return func(b *Bridge) {
		b.logOn = details
	}
}

func New(r io.Reader, w io.Writer, logger *slog.Logger, opts ...Option) *Bridge {
	if logger == nil {
		logger = logging.NewNop()
	}

	b := &Bridge{
		r:        r,
		w:        w,
		logger:   logger,
		pending:  map[uint64]chan response{},
		sessions: map[domain.UserID]*Session{},
		done:     make(chan struct{}),
		stop:     make(chan struct{}),
	}
	b.events = newMailbox[domain.Event](b.stop)
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Serve reads sidecar lines until the reader ends or ctx is cancelled. On return every pending
// call fails with domain.ErrBridgeClosed and the event streams are closed.
func (b *Bridge) Serve(ctx context.Context) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		readErr <- b.readLines(lines)
	}()
	defer b.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read bridge stream: %w", err)
			}
			return nil
		case line := <-lines:
			b.handleLine(line)
		}
	}
}

func (b *Bridge) readLines(out chan<- []byte) error {
	scanner := bufio.NewScanner(b.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		select {
		case out <- line:
		case <-b.done:
			return nil
		}
	}
	return scanner.Err()
}

func (b *Bridge) handleLine(raw []byte) {
	if len(raw) == 0 {
		return
	}

	var line inbound
	if err := json.Unmarshal(raw, &line); err != nil {
		b.logger.Warn("malformed bridge line", "err", err)
		return
	}

	switch {
	case line.Event == "":
		b.resolve(line)
	case line.Session != "":
		b.routeSessionEvent(line)
	default:
		event, err := decodeEvent(line)
		if err != nil {
			b.logger.Warn("dropping bridge event", "err", err)
			return
		}
		b.track(event)
		b.events.push(event)
	}
}

func (b *Bridge) track(event domain.Event) {
	switch event.(type) {
	case domain.LoggedOn:
		b.loggedOn.Store(true)
	case domain.LoggedOff:
		b.loggedOn.Store(false)
	}
}

func (b *Bridge) resolve(line inbound) {
	b.mu.Lock()
	ch, ok := b.pending[line.ID]
	delete(b.pending, line.ID)
	b.mu.Unlock()

	if !ok {
		b.logger.Warn("result for unknown call", "id", line.ID)
		return
	}

	resp := response{result: line.Result}
	if line.Error != "" {
		resp.err = errors.New(line.Error)
	}
	ch <- resp
}

func (b *Bridge) routeSessionEvent(line inbound) {
	event, err := decodeSessionEvent(line)
	if err != nil {
		b.logger.Warn("dropping session event", "session", string(line.Session), "err", err)
		return
	}

	b.mu.Lock()
	session, ok := b.sessions[line.Session]
	if ok {
		if _, ended := event.(domain.SessionEnded); ended {
			delete(b.sessions, line.Session)
		}
	}
	b.mu.Unlock()

	if !ok {
		b.logger.Warn("event for unknown session", "session", string(line.Session), "kind", line.Event)
		return
	}

	session.box.push(event)
	if _, ended := event.(domain.SessionEnded); ended {
		session.box.close()
	}
}

// call sends one request and waits for its result. A nil out discards the result.
func (b *Bridge) call(ctx context.Context, name string, args any, out any) error {
	id := b.nextID.Add(1)
	ch := make(chan response, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("%s: %w", name, domain.ErrBridgeClosed)
	}
	b.pending[id] = ch
	b.mu.Unlock()

	if err := b.write(request{ID: id, Call: name, Args: args}); err != nil {
		b.forget(id)
		return fmt.Errorf("send %s: %w", name, err)
	}

	select {
	case <-ctx.Done():
		b.forget(id)
		return ctx.Err()
	case resp := <-ch:
		if resp.err != nil {
			if errors.Is(resp.err, domain.ErrBridgeClosed) {
				return fmt.Errorf("%s: %w", name, resp.err)
			}
			return &CallError{Call: name, Message: resp.err.Error()}
		}
		if out == nil || len(resp.result) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", name, err)
		}
		return nil
	}
}

func (b *Bridge) write(req request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	_, err = b.w.Write(data)
	return err
}

func (b *Bridge) forget(id uint64) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

func (b *Bridge) shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	pending := b.pending
	b.pending = map[uint64]chan response{}
	sessions := b.sessions
	b.sessions = map[domain.UserID]*Session{}
	b.mu.Unlock()

	close(b.done)
	for _, ch := range pending {
		ch <- response{err: domain.ErrBridgeClosed}
	}
	for _, session := range sessions {
		session.box.close()
	}
	b.events.close()
}

// Close stops delivering queued events to consumers that are no longer reading.
func (b *Bridge) Close() {
	select {
	case <-b.stop:
	default:
		close(b.stop)
	}
}

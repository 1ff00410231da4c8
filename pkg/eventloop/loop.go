package eventloop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Loop errors.
var (
	ErrAlreadyStarted = errors.New("event loop already started")
	ErrNotStarted     = errors.New("event loop not started")
	ErrNotRegistered  = errors.New("handler not registered")
	ErrQueueFull      = errors.New("event queue full")
	ErrInvalidArg     = errors.New("invalid argument")
)

// Post timeouts.
const (
	// WaitForever blocks until queue space is available.
	WaitForever time.Duration = -1

	// NoWait fails immediately when the queue is full.
	NoWait time.Duration = 0
)

// Base names an event family (e.g. "ETH_EVENT").
type Base string

// ID identifies an event within its base.
type ID int32

// AnyID registers a handler for every event of a base.
const AnyID ID = -1

// Handler receives an event. data is whatever the poster supplied.
type Handler func(base Base, id ID, data any)

// Registration identifies a registered handler for Unregister.
type Registration struct {
	base    Base
	id      ID
	handler Handler
}

// Base returns the event base the handler is registered on.
func (r *Registration) Base() Base { return r.base }

// ID returns the event ID the handler is registered on.
func (r *Registration) ID() ID { return r.id }

// Config configures a Loop.
type Config struct {
	// Name identifies the loop in log output.
	Name string

	// QueueSize is the number of events buffered before Post blocks.
	// Default: 32.
	QueueSize int

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

type posted struct {
	base Base
	id   ID
	data any

	// barrier, when set, is closed by the dispatcher instead of invoking handlers.
	barrier chan struct{}
}

// Loop dispatches posted events to registered handlers from a single goroutine.
type Loop struct {
	name   string
	logger *slog.Logger
	queue  chan posted

	mu       sync.RWMutex
	handlers []*Registration
	running  bool
	stop     chan struct{}
	done     chan struct{}
}

// New creates a stopped loop. Events posted before Start are queued.
func New(cfg Config) *Loop {
	size := cfg.QueueSize
	if size <= 0 {
		size = 32
	}
	return &Loop{
		name:   cfg.Name,
		logger: cfg.Logger,
		queue:  make(chan posted, size),
	}
}

// Name returns the loop name.
func (l *Loop) Name() string {
	return l.name
}

// Start launches the dispatch goroutine.
// It returns ErrAlreadyStarted if the loop is running.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrAlreadyStarted
	}
	l.running = true
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.run(l.stop, l.done)
	l.debugLog("event loop started")
	return nil
}

// Stop halts dispatching and waits for the handler in progress to return.
// Queued events stay queued until the next Start.
func (l *Loop) Stop() error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return ErrNotStarted
	}
	l.running = false
	stop, done := l.stop, l.done
	l.mu.Unlock()

	close(stop)
	<-done
	l.debugLog("event loop stopped")
	return nil
}

// Running reports whether the dispatch goroutine is active.
func (l *Loop) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Register adds a handler for base/id. Use AnyID to receive every event of
// the base. The same function may be registered more than once; each
// registration is delivered and removed independently.
func (l *Loop) Register(base Base, id ID, handler Handler) (*Registration, error) {
	if base == "" || handler == nil {
		return nil, ErrInvalidArg
	}
	reg := &Registration{base: base, id: id, handler: handler}

	l.mu.Lock()
	l.handlers = append(l.handlers, reg)
	l.mu.Unlock()

	l.debugLog("handler registered", "base", base, "id", id)
	return reg, nil
}

// Unregister removes a registration. It returns ErrNotRegistered if reg is
// nil or was already removed.
func (l *Loop) Unregister(reg *Registration) error {
	if reg == nil {
		return ErrNotRegistered
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.handlers {
		if r == reg {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			l.debugLog("handler unregistered", "base", reg.base, "id", reg.id)
			return nil
		}
	}
	return ErrNotRegistered
}

// HandlerCount returns the number of registered handlers.
func (l *Loop) HandlerCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.handlers)
}

// Post queues an event. A done ctx is reported without queuing. With
// WaitForever it blocks until the queue has room or ctx is done; with NoWait
// it returns ErrQueueFull when the queue is full; a positive timeout bounds
// the wait.
func (l *Loop) Post(ctx context.Context, base Base, id ID, data any, timeout time.Duration) error {
	if base == "" {
		return ErrInvalidArg
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := posted{base: base, id: id, data: data}

	// Fast path: room in the queue.
	select {
	case l.queue <- ev:
		return nil
	default:
	}

	switch {
	case timeout == NoWait:
		return ErrQueueFull
	case timeout < 0:
		select {
		case l.queue <- ev:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case l.queue <- ev:
			return nil
		case <-timer.C:
			return ErrQueueFull
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Flush blocks until every event queued before the call has been dispatched.
// It returns ErrNotStarted if the loop is not running. Flush must not be
// called from a handler of the same loop.
func (l *Loop) Flush(ctx context.Context) error {
	if !l.Running() {
		return ErrNotStarted
	}
	barrier := make(chan struct{})
	select {
	case l.queue <- posted{barrier: barrier}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) run(stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case ev := <-l.queue:
			l.dispatch(ev)
		}
	}
}

// dispatch invokes matching handlers in registration order. The handler list
// is snapshotted so handlers may register or unregister without deadlock.
func (l *Loop) dispatch(ev posted) {
	if ev.barrier != nil {
		close(ev.barrier)
		return
	}

	l.mu.RLock()
	matched := make([]*Registration, 0, len(l.handlers))
	for _, r := range l.handlers {
		if r.base == ev.base && (r.id == AnyID || r.id == ev.id) {
			matched = append(matched, r)
		}
	}
	l.mu.RUnlock()

	for _, r := range matched {
		l.invoke(r, ev)
	}
}

func (l *Loop) invoke(r *Registration, ev posted) {
	defer func() {
		if p := recover(); p != nil {
			if l.logger != nil {
				l.logger.Error("event handler panicked",
					"loop", l.name, "base", ev.base, "id", ev.id, "panic", p)
			}
		}
	}()
	r.handler(ev.base, ev.id, ev.data)
}

// debugLog logs a debug message if logging is enabled.
func (l *Loop) debugLog(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, append([]any{"loop", l.name}, args...)...)
	}
}

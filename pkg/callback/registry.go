package callback

import (
	"log/slog"
	"sync"
)

// Handler observes events of type T. Handlers receive the payload by
// value and have no way to mutate the emitting component's state.
type Handler[T any] func(T)

// Registry holds an ordered, append-only list of handlers for one event
// kind. Handlers fire synchronously in registration order; a panicking
// handler is recovered and logged without affecting its siblings.
type Registry[T any] struct {
	name     string
	log      *slog.Logger
	mu       sync.RWMutex
	handlers []Handler[T]
}

// New creates a registry for the named event kind. The name only appears
// in log records. A nil logger falls back to slog.Default().
func New[T any](name string, log *slog.Logger) *Registry[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Registry[T]{name: name, log: log}
}

// Register appends h to the handler list. It returns ErrInvalidHandler
// for a nil handler.
func (r *Registry[T]) Register(h Handler[T]) error {
	if h == nil {
		return ErrInvalidHandler
	}
	r.mu.Lock()
	r.handlers = append(r.handlers, h)
	r.mu.Unlock()
	return nil
}

// Len returns the number of registered handlers.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Fire invokes every handler in registration order with event. Panics
// are recovered per handler so one failing observer cannot block the
// rest.
func (r *Registry[T]) Fire(event T) {
	r.mu.RLock()
	handlers := r.handlers
	r.mu.RUnlock()

	for i, h := range handlers {
		r.invoke(i, h, event)
	}
}

// FireWait invokes every handler like Fire and returns a channel that is
// closed once all of them have returned, including handlers that
// panicked. Callers that must not proceed until consumers have observed
// the event (teardown, pause) receive on the channel.
func (r *Registry[T]) FireWait(event T) <-chan struct{} {
	done := make(chan struct{})
	r.Fire(event)
	close(done)
	return done
}

func (r *Registry[T]) invoke(i int, h Handler[T], event T) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("event handler panicked",
				slog.String("event", r.name),
				slog.Int("handler", i),
				slog.Any("panic", rec),
			)
		}
	}()
	h(event)
}

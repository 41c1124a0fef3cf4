package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Dispatcher is an in-memory Source. Platform adapters push signals in
// through Emit (or the typed convenience methods) and every subscriber
// of the matching kind receives them synchronously on the emitting
// goroutine.
type Dispatcher struct {
	mu   sync.RWMutex
	subs map[Kind]map[string]func(Event)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[Kind]map[string]func(Event))}
}

// Subscribe registers fn for signals of the given kind.
func (d *Dispatcher) Subscribe(kind Kind, fn func(Event)) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrInvalidCallback
	}

	id := uuid.New().String()

	d.mu.Lock()
	if d.subs[kind] == nil {
		d.subs[kind] = make(map[string]func(Event))
	}
	d.subs[kind][id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subs[kind], id)
			d.mu.Unlock()
		})
	}, nil
}

// Emit delivers ev to all subscribers of ev.Kind.
func (d *Dispatcher) Emit(ev Event) {
	d.mu.RLock()
	fns := make([]func(Event), 0, len(d.subs[ev.Kind]))
	for _, fn := range d.subs[ev.Kind] {
		fns = append(fns, fn)
	}
	d.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Activity emits a user activity signal.
func (d *Dispatcher) Activity() {
	d.Emit(Event{Kind: KindActivity})
}

// VisibilityChanged emits a visibility signal.
func (d *Dispatcher) VisibilityChanged(hidden bool) {
	d.Emit(Event{Kind: KindVisibility, Hidden: hidden})
}

// NetworkChanged emits a connectivity signal.
func (d *Dispatcher) NetworkChanged(online bool) {
	d.Emit(Event{Kind: KindNetwork, Online: online})
}

// TeardownImminent emits a teardown signal.
func (d *Dispatcher) TeardownImminent() {
	d.Emit(Event{Kind: KindTeardown})
}

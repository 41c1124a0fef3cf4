package signal

import (
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Bind subscribes a Tracker to every signal kind of src and routes each
// signal to the matching Tracker method. The returned Unsubscribe
// detaches all four subscriptions at once.
func Bind(t *session.Tracker, src Source) (Unsubscribe, error) {
	var tokens []Unsubscribe

	unbind := func() {
		for _, u := range tokens {
			u()
		}
	}

	routes := map[Kind]func(Event){
		KindActivity:   func(Event) { t.Activity() },
		KindVisibility: func(ev Event) { t.VisibilityChanged(ev.Hidden) },
		KindNetwork:    func(ev Event) { t.NetworkChanged(ev.Online) },
		KindTeardown:   func(Event) { t.TeardownImminent() },
	}

	for kind, route := range routes {
		token, err := src.Subscribe(kind, route)
		if err != nil {
			unbind()
			return nil, err
		}
		tokens = append(tokens, token)
	}

	var once sync.Once
	return func() { once.Do(unbind) }, nil
}

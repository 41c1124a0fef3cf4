package signal

// Kind identifies a class of host signal.
type Kind string

const (
	// KindActivity is user input of any form (touch, mouse, keys).
	KindActivity Kind = "activity"
	// KindVisibility is a host visibility change; Event.Hidden carries
	// the new state.
	KindVisibility Kind = "visibility"
	// KindNetwork is a connectivity change; Event.Online carries the
	// new state.
	KindNetwork Kind = "network"
	// KindTeardown means the host is about to discard the process.
	KindTeardown Kind = "teardown"
)

// Event is one host signal. Hidden is meaningful for KindVisibility,
// Online for KindNetwork.
type Event struct {
	Kind   Kind
	Hidden bool
	Online bool
}

// Unsubscribe removes a subscription. Calling it more than once is safe.
type Unsubscribe func()

// Source is the abstract boundary between the session core and concrete
// platform event adapters. The core only consumes signals; attaching
// real listeners (visibility API, touch events, network API) is the
// adapter's concern.
type Source interface {
	// Subscribe registers fn for signals of the given kind and returns a
	// token that removes the subscription. It returns ErrInvalidCallback
	// for a nil callback.
	Subscribe(kind Kind, fn func(Event)) (Unsubscribe, error)
}

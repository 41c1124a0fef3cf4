package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/signal"
)

func TestDispatcher_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil callback", func(t *testing.T) {
		t.Parallel()
		d := signal.NewDispatcher()

		_, err := d.Subscribe(signal.KindActivity, nil)
		assert.ErrorIs(t, err, signal.ErrInvalidCallback)
	})

	t.Run("delivers only the subscribed kind", func(t *testing.T) {
		t.Parallel()
		d := signal.NewDispatcher()

		var activity, network int
		_, err := d.Subscribe(signal.KindActivity, func(signal.Event) { activity++ })
		require.NoError(t, err)
		_, err = d.Subscribe(signal.KindNetwork, func(signal.Event) { network++ })
		require.NoError(t, err)

		d.Activity()
		d.VisibilityChanged(true)
		d.NetworkChanged(false)

		assert.Equal(t, 1, activity)
		assert.Equal(t, 1, network)
	})

	t.Run("payload carries the flags", func(t *testing.T) {
		t.Parallel()
		d := signal.NewDispatcher()

		var events []signal.Event
		_, err := d.Subscribe(signal.KindVisibility, func(ev signal.Event) { events = append(events, ev) })
		require.NoError(t, err)

		d.VisibilityChanged(true)
		d.VisibilityChanged(false)

		require.Len(t, events, 2)
		assert.True(t, events[0].Hidden)
		assert.False(t, events[1].Hidden)
	})

	t.Run("unsubscribe stops delivery and is reentrant", func(t *testing.T) {
		t.Parallel()
		d := signal.NewDispatcher()

		var calls int
		unsub, err := d.Subscribe(signal.KindTeardown, func(signal.Event) { calls++ })
		require.NoError(t, err)

		d.TeardownImminent()
		unsub()
		unsub()
		d.TeardownImminent()

		assert.Equal(t, 1, calls)
	})
}

package callback_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/callback"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil handler", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[int]("test", discardLogger())

		err := reg.Register(nil)
		assert.ErrorIs(t, err, callback.ErrInvalidHandler)
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[int]("test", discardLogger())

		require.NoError(t, reg.Register(func(int) {}))
		require.NoError(t, reg.Register(func(int) {}))
		assert.Equal(t, 2, reg.Len())
	})
}

func TestRegistry_Fire(t *testing.T) {
	t.Parallel()

	t.Run("invokes handlers in registration order", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[string]("test", discardLogger())

		var got []string
		require.NoError(t, reg.Register(func(s string) { got = append(got, "first:"+s) }))
		require.NoError(t, reg.Register(func(s string) { got = append(got, "second:"+s) }))

		reg.Fire("ev")
		assert.Equal(t, []string{"first:ev", "second:ev"}, got)
	})

	t.Run("isolates a panicking handler", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[int]("test", discardLogger())

		var after bool
		require.NoError(t, reg.Register(func(int) { panic("boom") }))
		require.NoError(t, reg.Register(func(int) { after = true }))

		assert.NotPanics(t, func() { reg.Fire(1) })
		assert.True(t, after)
	})

	t.Run("no handlers is a no-op", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[int]("test", discardLogger())
		assert.NotPanics(t, func() { reg.Fire(1) })
	})
}

func TestRegistry_FireWait(t *testing.T) {
	t.Parallel()

	t.Run("channel closes after all handlers ran", func(t *testing.T) {
		t.Parallel()
		reg := callback.New[int]("test", discardLogger())

		var calls int
		require.NoError(t, reg.Register(func(int) { calls++ }))
		require.NoError(t, reg.Register(func(int) { panic("boom") }))
		require.NoError(t, reg.Register(func(int) { calls++ }))

		select {
		case <-reg.FireWait(7):
		case <-time.After(time.Second):
			t.Fatal("FireWait channel never closed")
		}
		assert.Equal(t, 2, calls)
	})
}

package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/clock"
)

func TestMock_Add(t *testing.T) {
	t.Parallel()

	t.Run("fires due timers in deadline order", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		var fired []string
		clk.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
		clk.AfterFunc(time.Second, func() { fired = append(fired, "a") })
		clk.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })

		clk.Add(2 * time.Second)
		assert.Equal(t, []string{"a", "b"}, fired)

		clk.Add(time.Second)
		assert.Equal(t, []string{"a", "b", "c"}, fired)
	})

	t.Run("advances time to target", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()
		start := clk.Now()

		clk.Add(90 * time.Second)
		assert.Equal(t, 90*time.Second, clk.Now().Sub(start))
	})

	t.Run("fires timers scheduled during a fire", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		var fires int
		clk.AfterFunc(time.Second, func() {
			fires++
			clk.AfterFunc(time.Second, func() { fires++ })
		})

		clk.Add(2 * time.Second)
		assert.Equal(t, 2, fires)
	})

	t.Run("zero advance fires timers due now", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		fired := false
		clk.AfterFunc(0, func() { fired = true })

		clk.Add(0)
		assert.True(t, fired)
	})

	t.Run("timer time is observable inside the callback", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()
		start := clk.Now()

		var at time.Duration
		clk.AfterFunc(time.Second, func() { at = clk.Now().Sub(start) })

		clk.Add(5 * time.Second)
		assert.Equal(t, time.Second, at)
	})
}

func TestMockTimer(t *testing.T) {
	t.Parallel()

	t.Run("stop prevents fire", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		fired := false
		timer := clk.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		clk.Add(2 * time.Second)
		assert.False(t, fired)
		assert.False(t, timer.Stop())
	})

	t.Run("reset reschedules", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		var fires int
		timer := clk.AfterFunc(time.Second, func() { fires++ })

		clk.Add(500 * time.Millisecond)
		timer.Reset(time.Second)

		clk.Add(900 * time.Millisecond)
		assert.Equal(t, 0, fires)

		clk.Add(100 * time.Millisecond)
		assert.Equal(t, 1, fires)
	})

	t.Run("reset restarts a fired timer", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		var fires int
		timer := clk.AfterFunc(time.Second, func() { fires++ })

		clk.Add(time.Second)
		assert.Equal(t, 1, fires)

		assert.False(t, timer.Reset(time.Second))
		clk.Add(time.Second)
		assert.Equal(t, 2, fires)
	})
}

func TestMock_Set(t *testing.T) {
	t.Parallel()

	t.Run("forward set fires due timers", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()

		fired := false
		clk.AfterFunc(time.Minute, func() { fired = true })

		clk.Set(clk.Now().Add(time.Hour))
		assert.True(t, fired)
	})

	t.Run("backward set only moves the time", func(t *testing.T) {
		t.Parallel()
		clk := clock.NewMock()
		target := clk.Now().Add(-time.Hour)

		clk.Set(target)
		assert.Equal(t, target, clk.Now())
	})
}

func TestMock_Since(t *testing.T) {
	t.Parallel()
	clk := clock.NewMock()
	start := clk.Now()

	clk.Add(42 * time.Second)
	assert.Equal(t, 42*time.Second, clk.Since(start))
}

package handlers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaybackTaskStartStop(t *testing.T) {
	task := NewPlaybackTask(5 * time.Millisecond)
	var ticks atomic.Int32

	require.True(t, task.Start(func(ctx context.Context) bool {
		ticks.Add(1)
		return true
	}))
	assert.False(t, task.Start(func(ctx context.Context) bool { return true }), "second start is ignored")
	assert.True(t, task.Running())

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	task.Stop()
	assert.False(t, task.Running())
	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after Stop returns")

	// повторный Stop безопасен
	task.Stop()
}

func TestPlaybackTaskStopsItself(t *testing.T) {
	task := NewPlaybackTask(time.Millisecond)
	var ticks atomic.Int32

	task.Start(func(ctx context.Context) bool {
		return ticks.Add(1) < 3
	})
	require.Eventually(t, func() bool { return !task.Running() }, time.Second, time.Millisecond)
	assert.Equal(t, int32(3), ticks.Load())

	// после самостоятельной остановки задачу можно запустить снова
	require.True(t, task.Start(func(ctx context.Context) bool {
		ticks.Add(1)
		return false
	}))
	require.Eventually(t, func() bool { return ticks.Load() == 4 }, time.Second, time.Millisecond)
	task.Stop()
}

func TestPlaybackTaskDefaultInterval(t *testing.T) {
	assert.Equal(t, time.Second, NewPlaybackTask(0).Interval())
	assert.Equal(t, 250*time.Millisecond, NewPlaybackTask(250*time.Millisecond).Interval())
}

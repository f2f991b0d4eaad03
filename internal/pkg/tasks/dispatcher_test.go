package tasks_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"onboarding/internal/pkg/tasks"

	"github.com/stretchr/testify/assert"
)

func newTestDispatcher() *tasks.Dispatcher {
	return tasks.NewDispatcher(slog.Default())
}

func TestDispatcher_Submit_RunsTask(t *testing.T) {
	d := newTestDispatcher()

	var ran atomic.Bool
	d.Submit("test", func(ctx context.Context) {
		ran.Store(true)
	})

	d.Close()
	assert.True(t, ran.Load())
}

func TestDispatcher_Submit_DoesNotBlockCaller(t *testing.T) {
	d := newTestDispatcher()

	release := make(chan struct{})
	d.Submit("slow", func(ctx context.Context) {
		<-release
	})

	// Submit returned while the task is still blocked; releasing it lets
	// Close drain cleanly.
	close(release)
	d.Close()
}

func TestDispatcher_Submit_RecoversPanic(t *testing.T) {
	d := newTestDispatcher()

	var after atomic.Bool
	d.Submit("panicking", func(ctx context.Context) {
		panic("boom")
	})
	d.Submit("after", func(ctx context.Context) {
		after.Store(true)
	})

	d.Close()
	assert.True(t, after.Load())
}

func TestDispatcher_Close_DrainsInFlightTasks(t *testing.T) {
	d := newTestDispatcher()

	var count atomic.Int32
	for range 10 {
		d.Submit("counting", func(ctx context.Context) {
			count.Add(1)
		})
	}

	d.Close()
	assert.Equal(t, int32(10), count.Load())
}

func TestDispatcher_Submit_AfterCloseIsDropped(t *testing.T) {
	d := newTestDispatcher()
	d.Close()

	var ran atomic.Bool
	d.Submit("late", func(ctx context.Context) {
		ran.Store(true)
	})

	assert.False(t, ran.Load())
}

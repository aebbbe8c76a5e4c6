package handlers

import (
	"context"
	"sync"
	"time"
)

// TickFunc выполняется на каждом тике воспроизведения; false останавливает задачу
type TickFunc func(ctx context.Context) bool

// PlaybackTask периодическая задача воспроизведения с явными Start/Stop
type PlaybackTask struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlaybackTask создает остановленную задачу с заданным интервалом тиков
func NewPlaybackTask(interval time.Duration) *PlaybackTask {
	if interval <= 0 {
		interval = time.Second
	}
	return &PlaybackTask{interval: interval}
}

// Start запускает тики. Возвращает false, если задача уже работает.
func (t *PlaybackTask) Start(fn TickFunc) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningLocked() {
		return false
	}
	if t.cancel != nil {
		// задача завершилась сама по себе
		t.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go t.run(ctx, fn, done)
	return true
}

func (t *PlaybackTask) run(ctx context.Context, fn TickFunc, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !fn(ctx) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Stop отменяет будущие тики и ждет завершения текущего.
// Нельзя вызывать из TickFunc.
func (t *PlaybackTask) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running сообщает, идут ли тики
func (t *PlaybackTask) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runningLocked()
}

func (t *PlaybackTask) runningLocked() bool {
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Interval возвращает период тиков
func (t *PlaybackTask) Interval() time.Duration {
	return t.interval
}

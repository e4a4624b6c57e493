package eventloop

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrStopped is returned when work is posted to a loop that has exited.
var ErrStopped = errors.New("event loop stopped")

// Loop runs callbacks one at a time on a single goroutine, in the order
// they were posted. Timers post their callbacks onto the same queue, so
// nothing scheduled through a Loop ever runs concurrently with anything
// else scheduled through it.
type Loop struct {
	actions chan func()
	done    chan struct{}
}

// New creates a Loop whose queue holds up to buffer pending callbacks.
func New(buffer int) *Loop {
	return &Loop{
		actions: make(chan func(), buffer),
		done:    make(chan struct{}),
	}
}

// Run is the main loop. It processes callbacks sequentially until ctx is
// cancelled. It should be run as a goroutine and only once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("event loop stopping", "tag", "loop")
			return nil
		case fn := <-l.actions:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn, blocking while the queue is full.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	select {
	case l.actions <- fn:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// TryPost queues fn without blocking. It reports false when the queue is
// full or the loop has stopped; fn is then dropped.
func (l *Loop) TryPost(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.actions <- fn:
		return true
	default:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ScheduleOnce posts fn once after delay. A loop that has stopped by then
// drops it.
func (l *Loop) ScheduleOnce(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		if err := l.Post(fn); err != nil {
			slog.Debug("dropped delayed callback", "tag", "loop", "err", err)
		}
	})
}

// ScheduleRepeating posts fn every interval until the loop stops. A tick
// that finds the queue still holding the previous one waits for it, and
// the ticker drops the ticks missed meanwhile.
func (l *Loop) ScheduleRepeating(interval time.Duration, fn func()) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := l.Post(fn); err != nil {
					return
				}
			case <-l.done:
				return
			}
		}
	}()
}

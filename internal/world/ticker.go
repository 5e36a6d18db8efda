package world

import (
	"context"
	"time"
)

// AutoTicker runs a single sleep-then-tick loop against a Manager, sharing
// the manager's own serialisation with any request-driven Tick calls (spec
// §5). Only one AutoTicker should run per Manager at a time; nothing here
// prevents a second caller from also driving Tick concurrently, since the
// manager's mutex makes that safe, just redundant.
type AutoTicker struct {
	manager    *Manager
	interval   time.Duration
	deltaHours float64

	onTick func(TickResult)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoTicker builds an AutoTicker that calls manager.Tick(ctx, deltaHours)
// once per interval. onTick may be nil.
func NewAutoTicker(manager *Manager, interval time.Duration, deltaHours float64, onTick func(TickResult)) *AutoTicker {
	return &AutoTicker{
		manager:    manager,
		interval:   interval,
		deltaHours: deltaHours,
		onTick:     onTick,
	}
}

// Start launches the loop in its own goroutine. Calling Start twice without
// an intervening Stop leaks the first goroutine.
func (t *AutoTicker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				result := t.manager.Tick(ctx, t.deltaHours)
				if t.onTick != nil {
					t.onTick(result)
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until its goroutine has exited.
func (t *AutoTicker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
}

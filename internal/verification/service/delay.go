package service

import (
	"context"
	"time"
)

// DefaultDelay mirrors the latency the storefront showed before revealing a result.
const DefaultDelay = 1500 * time.Millisecond

// Waiter pauses before a lookup resolves. The pause is cosmetic: Wait reports
// whether it ran to completion, and callers resolve the lookup either way.
type Waiter interface {
	Wait(ctx context.Context) (completed bool)
}

// FixedDelay waits for a fixed duration or until ctx is done.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// NoDelay resolves immediately.
type NoDelay struct{}

func (NoDelay) Wait(context.Context) bool { return true }

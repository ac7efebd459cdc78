package llm

import (
	"context"
	"sync"
)

// Mode identifies which backend a Failover is currently routing to.
type Mode string

const (
	ModeLive     Mode = "live"
	ModeFallback Mode = "fallback"
)

// Failover routes completions to the primary backend until its first failure,
// then latches to the local fallback for the remainder of the session. The
// latch is one-way: there is no retry or recovery probe.
type Failover struct {
	mu       sync.Mutex
	primary  Client
	fallback Client
	latched  bool
	notice   func(reason string)
}

// NewFailover wraps primary with the sticky fallback. notice, if non-nil, is
// invoked exactly once, when the latch flips.
func NewFailover(primary, fallback Client, notice func(reason string)) *Failover {
	return &Failover{primary: primary, fallback: fallback, notice: notice}
}

func (f *Failover) Complete(ctx context.Context, prompt string) (string, error) {
	if !f.isLatched() {
		out, err := f.primary.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			// A canceled caller is not an upstream failure.
			return "", err
		}
		f.latch(err)
	}
	return f.fallback.Complete(ctx, prompt)
}

// Mode reports the current routing target.
func (f *Failover) Mode() Mode {
	if f.isLatched() {
		return ModeFallback
	}
	return ModeLive
}

func (f *Failover) isLatched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latched
}

func (f *Failover) latch(cause error) {
	f.mu.Lock()
	already := f.latched
	f.latched = true
	f.mu.Unlock()

	if !already && f.notice != nil {
		f.notice(cause.Error())
	}
}

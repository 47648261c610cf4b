package explorer

import (
	"context"
	"sync"
)

// callSlot gives a load method switch-to-latest semantics. Each new call
// cancels the previous call's context and bumps the generation; a completion
// whose generation is no longer current must not touch the store. Cancelling
// the superseded request is best-effort: its context aborts the transport,
// and a result that arrives anyway is dropped by the generation check.
type callSlot struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// begin supersedes any in-flight call and returns the new call's context and
// generation.
func (c *callSlot) begin(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	ctx, c.cancel = context.WithCancel(ctx)
	return ctx, c.gen
}

// invalidate supersedes any in-flight call without starting a new one. Used
// by resets so late results cannot resurrect cleared state.
func (c *callSlot) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}

// current reports whether gen still identifies the latest call.
func (c *callSlot) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gen == gen
}

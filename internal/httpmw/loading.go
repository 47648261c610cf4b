package httpmw

import (
	"net/http"
	"sync/atomic"
)

// LoadCounter tracks the number of in-flight requests. It never reports a
// negative value: decrementing past zero clamps at zero.
type LoadCounter struct {
	n atomic.Int64
}

func NewLoadCounter() *LoadCounter {
	return &LoadCounter{}
}

// Inc records a newly dispatched request.
func (c *LoadCounter) Inc() {
	c.n.Add(1)
	inFlightRequests.Inc()
}

// Dec records a settled request. Calling Dec with nothing in flight is a no-op.
func (c *LoadCounter) Dec() {
	for {
		cur := c.n.Load()
		if cur == 0 {
			return
		}
		if c.n.CompareAndSwap(cur, cur-1) {
			inFlightRequests.Dec()
			return
		}
	}
}

// Value returns the current number of in-flight requests.
func (c *LoadCounter) Value() int64 {
	return c.n.Load()
}

// LoadingDoer wraps the outermost stage of the chain, incrementing the shared
// counter on dispatch and decrementing it exactly once when the request
// settles, whether by response, translated error, or cancellation.
type LoadingDoer struct {
	next    Doer
	counter *LoadCounter
}

func NewLoadingDoer(counter *LoadCounter, next Doer) *LoadingDoer {
	return &LoadingDoer{
		next:    next,
		counter: counter,
	}
}

func (d *LoadingDoer) Do(req *http.Request) (*http.Response, error) {
	d.counter.Inc()
	defer d.counter.Dec()

	return d.next.Do(req)
}

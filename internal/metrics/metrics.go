package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Checkout counts order submission outcomes.
type Checkout struct {
	Attempts  Counter
	Rejected  Counter
	Succeeded Counter
	Failed    Counter
}

type CheckoutSnapshot struct {
	Attempts  uint64 `json:"attempts"`
	Rejected  uint64 `json:"rejected"`
	Succeeded uint64 `json:"succeeded"`
	Failed    uint64 `json:"failed"`
}

func (c *Checkout) Snapshot() CheckoutSnapshot {
	return CheckoutSnapshot{
		Attempts:  c.Attempts.Load(),
		Rejected:  c.Rejected.Load(),
		Succeeded: c.Succeeded.Load(),
		Failed:    c.Failed.Load(),
	}
}

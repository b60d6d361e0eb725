package cart

import (
	"context"
	"sync"
	"time"

	"dalarosa-be/internal/logger"

	"go.uber.org/zap"
)

const DefaultTTL = 6 * time.Hour

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry owns one Store per shopper session and forgets carts that have
// been idle for longer than ttl.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		carts: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the shopper's cart, creating an empty one on first use.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.carts[sessionID]
	if !ok {
		e = &entry{store: NewStore()}
		r.carts[sessionID] = e
	}
	e.lastSeen = r.now()
	return e.store
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// Sweep evicts idle carts and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	now := r.now()
	for id, e := range r.carts {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.carts, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.L().Debug("evicted idle carts", zap.Int("count", n))
			}
		}
	}
}

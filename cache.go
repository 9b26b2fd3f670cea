package algodft

import (
	"fmt"
	"sync"
)

type cacheKey struct {
	op Operation
	n  int
}

// PlanCache memoises plans by (operation, size) so that code which sees the
// same sizes repeatedly pays for the twiddle computation once.
//
// A PlanCache is safe for concurrent use. The zero value is not usable; call
// NewPlanCache.
type PlanCache[T Complex] struct {
	mu    sync.RWMutex
	plans map[cacheKey]*Plan[T]
}

// NewPlanCache creates an empty cache.
func NewPlanCache[T Complex]() *PlanCache[T] {
	return &PlanCache[T]{plans: make(map[cacheKey]*Plan[T])}
}

// Get returns the cached plan for (op, n), building it on first use.
// Construction errors are returned wrapped and nothing is stored.
func (c *PlanCache[T]) Get(op Operation, n int) (*Plan[T], error) {
	key := cacheKey{op: op, n: n}

	c.mu.RLock()
	plan, ok := c.plans[key]
	c.mu.RUnlock()

	if ok {
		return plan, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if plan, ok := c.plans[key]; ok {
		return plan, nil
	}

	plan, err := NewPlan[T](op, n)
	if err != nil {
		return nil, fmt.Errorf("plan cache: %s size %d: %w", op, n, err)
	}

	c.plans[key] = plan

	return plan, nil
}

// Len returns the number of cached plans.
func (c *PlanCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.plans)
}

// Clear removes all cached plans.
func (c *PlanCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.plans)
}

package tokenmeta

import (
	"sync"
	"time"
)

// cooldownTracker remembers mints whose remote fetch recently failed,
// so repeated lookups for the same unresolvable mint don't each pay
// for a network round trip.
type cooldownTracker struct {
	mu        sync.Mutex
	untilTime map[string]time.Time
}

func newCooldownTracker() *cooldownTracker {
	return &cooldownTracker{untilTime: make(map[string]time.Time)}
}

// active reports whether mint is still within its failure cooldown.
func (c *cooldownTracker) active(mint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	until, ok := c.untilTime[mint]
	if !ok {
		return false
	}
	return time.Now().Before(until)
}

// markFailed starts (or restarts) a mint's cooldown window.
func (c *cooldownTracker) markFailed(mint string, cooldown time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.untilTime[mint] = time.Now().Add(cooldown)
}

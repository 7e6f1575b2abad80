// Package monotime hands out strictly increasing millisecond tokens for
// time-derived identifiers (INV- numbers, staff ids). Two calls in the same
// millisecond never collide.
package monotime

import (
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64
)

// Next returns a unix-millisecond token, bumped past the previous one when
// the clock has not moved yet.
func Next() int64 {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return now
}

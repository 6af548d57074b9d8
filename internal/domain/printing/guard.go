package printing

import (
	"context"
	"time"
)

// PrintGuard serialises print runs per billing location. A double-tapped
// print button must not produce two bills, so a run first acquires the
// location and releases it when the run finishes. The TTL bounds how long a
// crashed run can keep a location locked.
type PrintGuard interface {
	// Acquire claims the location for one print run. Returns false when
	// another run already holds it.
	Acquire(ctx context.Context, locationKey string, ttl time.Duration) (bool, error)

	// Release frees the location after the run completed
	Release(ctx context.Context, locationKey string) error
}

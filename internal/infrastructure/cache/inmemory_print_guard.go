package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pos/backend/internal/domain/printing"
)

// entry represents a held location with expiration
type entry struct {
	expiresAt time.Time
}

// InMemoryPrintGuard implements PrintGuard using an in-memory map.
// This is suitable for single-instance deployments and testing.
type InMemoryPrintGuard struct {
	mu        sync.Mutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryPrintGuard creates a new in-memory print guard.
// It starts a background goroutine to clean up expired holds.
func NewInMemoryPrintGuard() *InMemoryPrintGuard {
	guard := &InMemoryPrintGuard{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	guard.wg.Add(1)
	go guard.cleanupLoop()

	return guard
}

// Acquire claims the location for one print run.
// Returns false if another run already holds it.
func (g *InMemoryPrintGuard) Acquire(_ context.Context, locationKey string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e, exists := g.entries[locationKey]; exists {
		if time.Now().Before(e.expiresAt) {
			return false, nil
		}
		// expired hold from a crashed run, take it over
	}

	g.entries[locationKey] = entry{
		expiresAt: time.Now().Add(ttl),
	}
	return true, nil
}

// Release frees the location
func (g *InMemoryPrintGuard) Release(_ context.Context, locationKey string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.entries, locationKey)
	return nil
}

// Close stops the cleanup goroutine and releases resources.
// Safe to call multiple times.
func (g *InMemoryPrintGuard) Close() error {
	g.closeOnce.Do(func() {
		close(g.stopChan)
		g.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired holds
func (g *InMemoryPrintGuard) cleanupLoop() {
	defer g.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			return
		case <-ticker.C:
			g.cleanup()
		}
	}
}

// cleanup removes expired holds from the guard
func (g *InMemoryPrintGuard) cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	for key, e := range g.entries {
		if now.After(e.expiresAt) {
			delete(g.entries, key)
		}
	}
}

// Size returns the number of held locations (for testing/monitoring)
func (g *InMemoryPrintGuard) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// Ensure InMemoryPrintGuard implements PrintGuard
var _ printing.PrintGuard = (*InMemoryPrintGuard)(nil)

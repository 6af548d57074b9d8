package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryPrintGuard_Acquire(t *testing.T) {
	guard := NewInMemoryPrintGuard()
	defer guard.Close()

	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "TABLE:5", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// second run on the same location is rejected
	ok, err = guard.Acquire(ctx, "TABLE:5", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// other locations are unaffected
	ok, err = guard.Acquire(ctx, "COUNTER:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryPrintGuard_Release(t *testing.T) {
	guard := NewInMemoryPrintGuard()
	defer guard.Close()

	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "TABLE:5", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, "TABLE:5"))

	ok, err = guard.Acquire(ctx, "TABLE:5", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryPrintGuard_ExpiredHoldIsTakenOver(t *testing.T) {
	guard := NewInMemoryPrintGuard()
	defer guard.Close()

	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "TABLE:5", time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(5 * time.Millisecond)

	ok, err = guard.Acquire(ctx, "TABLE:5", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInMemoryPrintGuard_Cleanup(t *testing.T) {
	guard := NewInMemoryPrintGuard()
	defer guard.Close()

	ctx := context.Background()

	_, err := guard.Acquire(ctx, "TABLE:1", time.Millisecond)
	require.NoError(t, err)
	_, err = guard.Acquire(ctx, "TABLE:2", time.Hour)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	guard.cleanup()

	assert.Equal(t, 1, guard.Size())
}

func TestInMemoryPrintGuard_CloseTwice(t *testing.T) {
	guard := NewInMemoryPrintGuard()

	assert.NoError(t, guard.Close())
	assert.NoError(t, guard.Close())
}

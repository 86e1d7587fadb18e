package cache_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"inventario/internal/cache"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetOrCompute_CachesWithinTTL(t *testing.T) {
	c := cache.New()
	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	value, hit, err := c.GetOrCompute("key", time.Minute, compute)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "value", value)

	value, hit, err = c.GetOrCompute("key", time.Minute, compute)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "value", value)

	assert.Equal(t, 1, calls)
}

func TestCache_GetOrCompute_RecomputesAfterExpiry(t *testing.T) {
	c := cache.New()
	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	_, hit, err := c.GetOrCompute("key", 10*time.Millisecond, compute)
	assert.NoError(t, err)
	assert.False(t, hit)

	time.Sleep(20 * time.Millisecond)

	value, hit, err := c.GetOrCompute("key", 10*time.Millisecond, compute)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, value)
	assert.Equal(t, 2, calls)
}

func TestCache_Invalidate_ForcesRecompute(t *testing.T) {
	c := cache.New()
	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	_, _, err := c.GetOrCompute("key", time.Minute, compute)
	assert.NoError(t, err)
	assert.True(t, c.Has("key"))

	c.Invalidate("key")
	assert.False(t, c.Has("key"))

	value, hit, err := c.GetOrCompute("key", time.Minute, compute)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, value)
}

func TestCache_GetOrCompute_DoesNotCacheErrors(t *testing.T) {
	c := cache.New()
	calls := 0
	compute := func() (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("store unavailable")
		}
		return "ok", nil
	}

	_, _, err := c.GetOrCompute("key", time.Minute, compute)
	assert.Error(t, err)
	assert.False(t, c.Has("key"))

	value, hit, err := c.GetOrCompute("key", time.Minute, compute)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", value)
}

func TestCache_ConcurrentMisses(t *testing.T) {
	c := cache.New()
	var calls int64
	compute := func() (interface{}, error) {
		atomic.AddInt64(&calls, 1)
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, _, err := c.GetOrCompute("key", time.Minute, compute)
			assert.NoError(t, err)
			assert.Equal(t, "value", value)
		}()
	}
	wg.Wait()

	// Concurrent misses may all compute; the entry must still be live.
	assert.True(t, c.Has("key"))
	assert.GreaterOrEqual(t, atomic.LoadInt64(&calls), int64(1))
}

func TestCache_IndependentKeys(t *testing.T) {
	c := cache.New()

	_, _, err := c.GetOrCompute("a", time.Minute, func() (interface{}, error) { return 1, nil })
	assert.NoError(t, err)
	_, _, err = c.GetOrCompute("b", time.Minute, func() (interface{}, error) { return 2, nil })
	assert.NoError(t, err)

	c.Invalidate("a")
	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
}

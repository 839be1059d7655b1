package cache_test

import (
	"card-rewards/internal/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", val)
}

func TestCache_GetMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	_, ok := c.Get("nonexistent")
	assert.False(t, ok)
}

func TestCache_Expiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)
	defer c.Close()

	c.Set("key1", "value1")
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("key1")
	assert.False(t, ok)
}

func TestCache_DeleteAndPurge(t *testing.T) {
	c := cache.New[int](5 * time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Purge()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCache_SetIf(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	assert.False(t, c.SetIf("key1", "stale", func() bool { return false }))
	_, ok := c.Get("key1")
	assert.False(t, ok)

	assert.True(t, c.SetIf("key1", "fresh", func() bool { return true }))
	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "fresh", val)
}

func TestCache_CloseTwice(t *testing.T) {
	c := cache.New[int](time.Minute)
	c.Close()
	c.Close()
}

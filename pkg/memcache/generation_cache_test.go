package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCacheSetGet(t *testing.T) {
	cache := NewResponseCache(time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("key", `{"days": []}`)
	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, `{"days": []}`, got)
	assert.Equal(t, 1, cache.Len())
}

func TestResponseCacheExpiry(t *testing.T) {
	cache := NewResponseCache(10 * time.Millisecond)

	cache.Set("key", "value")
	time.Sleep(25 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestResponseCacheOverwrite(t *testing.T) {
	cache := NewResponseCache(time.Minute)

	cache.Set("key", "first")
	cache.Set("key", "second")

	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, cache.Len())
}

func TestResponseCacheDefaultTTL(t *testing.T) {
	cache := NewResponseCache(0)

	cache.Set("key", "value")
	_, ok := cache.Get("key")
	assert.True(t, ok)
}

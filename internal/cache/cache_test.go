package cache

import (
	"fmt"
	"sync"
	"testing"

	detectrace "github.com/ipfs/go-detect-race"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/stretchr/testify/assert"
)

type cacheableT struct {
	Name string
}

func (ct *cacheableT) Hash() uint64 {
	return fnv1a.HashString64(ct.Name)
}

func TestCache(t *testing.T) {
	var c *Cache

	var (
		key   = &cacheableT{"foo"}
		value = "bar"
	)

	t.Run("New", func(t *testing.T) {
		c = NewCache()
		assert.NotNil(t, c)
	})

	t.Run("ReadNonExistentValue", func(t *testing.T) {
		_, ok := c.Read(key)
		assert.False(t, ok)
	})

	t.Run("Write", func(t *testing.T) {
		c.Write(key, value)
		c.Write(key, value)
	})

	t.Run("ReadExistentValue", func(t *testing.T) {
		v, ok := c.Read(key)
		assert.True(t, ok)
		assert.Equal(t, value, v)
	})

	t.Run("Clear", func(t *testing.T) {
		c.Clear()

		_, ok := c.Read(key)
		assert.False(t, ok)
	})
}

func TestCacheEviction(t *testing.T) {
	c := NewCache()

	// Overflow the cache; the earliest entries get evicted, the cache stays
	// bounded and usable.
	for i := 0; i < maxCachedStatements+100; i++ {
		c.Write(&cacheableT{fmt.Sprintf("key-%d", i)}, fmt.Sprintf("value-%d", i))
	}

	_, ok := c.Read(&cacheableT{"key-0"})
	assert.False(t, ok)

	v, ok := c.Read(&cacheableT{fmt.Sprintf("key-%d", maxCachedStatements+99)})
	assert.True(t, ok)
	assert.Equal(t, fmt.Sprintf("value-%d", maxCachedStatements+99), v)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()

	limit := 20000
	if detectrace.WithRace() {
		// The race detector can only track a bounded number of goroutines;
		// use a smaller workload when it is on.
		limit = 100
	}

	var wg sync.WaitGroup
	for i := 0; i < limit; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			key := &cacheableT{fmt.Sprintf("key-%d", i%64)}
			c.Write(key, "value")
			_, _ = c.Read(key)
		}(i)
	}
	wg.Wait()
}

func BenchmarkCacheReadWrite(b *testing.B) {
	c := NewCache()
	key := &cacheableT{"benchmark"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Write(key, "value")
		_, _ = c.Read(key)
	}
}

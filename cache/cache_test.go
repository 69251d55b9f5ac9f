package cache

import (
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func hashUint64(u uint64) uint64 { return u }

func TestShardedCache_GetSet(t *testing.T) {
	c := NewSharded[string, int](10, hashString)

	c.Set("key1", 42)
	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = (%d, %v), want (42, true)", val, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after update = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestShardedCache_GetOrCreate(t *testing.T) {
	c := NewSharded[string, int](10, hashString)
	calls := 0
	create := func() int {
		calls++
		return 100
	}

	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate() = %d, want 100", v)
	}
	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("GetOrCreate() = %d, want 100", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 1 and 1", s.Hits, s.Misses)
	}
	if s.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", s.HitRate())
	}
}

func TestShardedCache_EvictsLeastRecentlyUsed(t *testing.T) {
	// Identity hash with multiples of ShardCount keeps every key in shard 0.
	c := NewSharded[uint64, int](2, hashUint64)
	c.Set(0, 0)
	c.Set(ShardCount, 1)
	c.Get(0) // 0 is now most recently used
	c.Set(2*ShardCount, 2)

	if _, ok := c.Get(ShardCount); ok {
		t.Error("least recently used key should have been evicted")
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key should survive eviction")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestShardedCache_Clear(t *testing.T) {
	c := NewSharded[string, int](0, hashString)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if got := c.Stats().Capacity; got != DefaultCapacity*ShardCount {
		t.Errorf("Capacity = %d, want %d", got, DefaultCapacity*ShardCount)
	}
}

func TestShardedCache_Concurrent(t *testing.T) {
	c := NewSharded[uint64, uint64](64, hashUint64)
	var wg sync.WaitGroup
	var wrong atomic.Int64
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range uint64(500) {
				k := i + uint64(g)
				if v := c.GetOrCreate(k, func() uint64 { return k * 2 }); v != k*2 {
					wrong.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if wrong.Load() != 0 {
		t.Errorf("%d lookups returned a value for another key", wrong.Load())
	}
}

// Package cache provides a concurrent, sharded LRU cache.
//
// The renderer uses it to remember escape results by plane coordinate and
// iteration budget, so re-rendering an overlapping window (for example a
// zoom whose grid lines coincide with the previous one) skips the exact
// arithmetic for points it has already evaluated.
//
//	c := cache.NewSharded[uint64, int](256, func(k uint64) uint64 { return k * 0x9e3779b97f4a7c15 })
//	v := c.GetOrCreate(7, func() int { return 42 })
//
// # Thread Safety
//
// ShardedCache is safe for concurrent use and must not be copied after
// creation.
package cache

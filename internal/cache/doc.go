// Package cache provides a generic, thread-safe LRU cache.
//
// Cache[K, V] is a simple thread-safe cache suitable for single-threaded
// or low-contention scenarios. It uses a soft limit with 25% eviction when
// capacity is exceeded.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The coloring engine uses one Cache[histogramKey, *histogram.Context] per
// Apply call, keyed on (pixel-buffer identity, bin count), so that multiple
// histogram-family layers sharing the same bin count reuse one pre-pass.
//
// Cache is safe for concurrent use. It should not be copied after creation
// (it contains a mutex).
package cache

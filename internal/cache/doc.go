// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// Cache must not be copied after creation (it contains a mutex).
package cache

// cache.go
package qnull

import (
	"container/list"
	"fmt"
	"sync"
)

// zeroCacheCapacity bounds the memo to a fixed number of distinct
// (shape, backend, dtype) entries.
const zeroCacheCapacity = 128

type zeroCacheKey struct {
	shape string
	dtype DType
	like  Interface
}

type zeroCacheEntry struct {
	key    zeroCacheKey
	tensor *Tensor
}

/*
ZeroCache memoizes zero tensors keyed by shape, backend and element type.
Values are pure functions of their key and are never invalidated; a
least-recently-used policy bounds growth. The cache is safe for concurrent
use. Gradient-tracking backends must bypass it entirely.
*/
type ZeroCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[zeroCacheKey]*list.Element
	order    *list.List
}

func NewZeroCache(capacity int) *ZeroCache {
	return &ZeroCache{
		capacity: capacity,
		entries:  make(map[zeroCacheKey]*list.Element),
		order:    list.New(),
	}
}

// Get returns the shared zero tensor for the key, building and memoizing
// it on first use and evicting the least recently used entry when full.
func (c *ZeroCache) Get(shape []int, dtype DType, like Interface) *Tensor {
	key := zeroCacheKey{shape: fmt.Sprint(shape), dtype: dtype, like: like}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*zeroCacheEntry).tensor
	}

	tensor := Zeros(shape, dtype, like)
	el := c.order.PushFront(&zeroCacheEntry{key: key, tensor: tensor})
	c.entries[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*zeroCacheEntry).key)
	}
	return tensor
}

// Len reports the number of memoized entries.
func (c *ZeroCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

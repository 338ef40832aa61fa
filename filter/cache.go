package filter

import (
	"container/list"
	"sync"
)

// lruCache is a bounded, thread-safe map from expression to compiled filter
type lruCache struct {
	capacity int
	order    *list.List
	items    map[string]*list.Element
	mu       sync.Mutex
}

type cacheEntry struct {
	expression string
	filter     *Filter
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// get returns the cached filter and marks it most recently used
func (c *lruCache) get(expression string) (*Filter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).filter, true
}

// put stores f, evicting the least recently used entry when full
func (c *lruCache) put(expression string, f *Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[expression]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).filter = f
		return
	}

	c.items[expression] = c.order.PushFront(&cacheEntry{expression: expression, filter: f})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

func (c *lruCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

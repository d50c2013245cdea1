package converter

import (
	"sync"

	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
)

// lruCache is a thread-safe LRU cache of parse results keyed by source identifier.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value sourceid.Result
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

// get returns a copy of the cached result so callers cannot mutate the entry.
func (c *lruCache) get(key string) (sourceid.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return sourceid.Result{}, false
	}
	c.moveToFront(e)
	return cloneResult(e.value), true
}

func (c *lruCache) put(key string, value sourceid.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value = cloneResult(value)
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}

// cloneResult deep-copies the pointer fields of a parse result.
func cloneResult(r sourceid.Result) sourceid.Result {
	if r.NSLC != nil {
		n := *r.NSLC
		r.NSLC = &n
	}
	if r.SID.TempNetCode != nil {
		code := *r.SID.TempNetCode
		r.SID.TempNetCode = &code
	}
	if r.SID.TempNetYear != nil {
		year := *r.SID.TempNetYear
		r.SID.TempNetYear = &year
	}
	return r
}

// Package imagecache keeps encoded scene images keyed by their request.
//
// Scenes with an explicit seed are reproducible, so the bytes produced for
// a given space, seed, parameter set and format never change and can be
// served again without rendering.
package imagecache

import (
	"container/list"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/geonym"
)

const (
	// shardCount must be a power of two.
	shardCount = 8
	shardMask  = shardCount - 1

	// DefaultCapacity is the per-shard entry limit used when none is given.
	DefaultCapacity = 32
)

// Key identifies one encoded image.
type Key struct {
	Space  string
	Format string
	Seed   uint64
	Params string
}

// NewKey builds a key with params in a stable order.
func NewKey(space, format string, seed uint64, params geonym.Params) Key {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, k := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(toString(params[k]))
	}
	return Key{Space: space, Format: format, Seed: seed, Params: b.String()}
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return "?"
	}
}

func (k Key) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(k.Space))
	h.Write([]byte{0})
	h.Write([]byte(k.Format))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatUint(k.Seed, 16)))
	h.Write([]byte{0})
	h.Write([]byte(k.Params))
	return h.Sum64()
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

type entry struct {
	key  Key
	data []byte
}

type shard struct {
	mu      sync.Mutex
	entries map[Key]*list.Element
	order   *list.List
}

// Cache is a sharded LRU cache of encoded images. It is safe for concurrent use.
type Cache struct {
	shards   [shardCount]*shard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache holding up to capacity entries per shard.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[Key]*list.Element), order: list.New()}
	}
	return c
}

func (c *Cache) shard(k Key) *shard {
	return c.shards[k.hash()&shardMask]
}

// Get returns the bytes stored under k.
// The returned slice must not be modified.
func (c *Cache) Get(k Key) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	s := c.shard(k)
	s.mu.Lock()
	var data []byte
	el, ok := s.entries[k]
	if ok {
		s.order.MoveToFront(el)
		data = el.Value.(*entry).data
	}
	s.mu.Unlock()
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return data, true
}

// Set stores data under k, evicting the least recently used entry of the
// shard when it is full.
func (c *Cache) Set(k Key, data []byte) {
	if c == nil {
		return
	}
	s := c.shard(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[k]; ok {
		el.Value.(*entry).data = data
		s.order.MoveToFront(el)
		return
	}
	for s.order.Len() >= c.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).key)
		c.evictions.Add(1)
	}
	s.entries[k] = s.order.PushFront(&entry{key: k, data: data})
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.order.Len()
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int { return c.capacity }

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

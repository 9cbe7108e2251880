package index

import (
	"container/list"
	"sync"
	"time"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
)

// ErrDocumentTooLarge is returned by Store when a single document exceeds
// the cache limit.
var ErrDocumentTooLarge = errors.New("document too large for cache")

// CacheKey identifies one version of a file. A file whose size or
// modification time changed no longer matches its cached tree.
type CacheKey struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// DocumentCache keeps parsed documents between loads, keyed by file path.
//
// At most one version of each path is cached. Looking up a path whose size
// or modification time changed drops the stale tree. When the estimated
// memory of the cached trees exceeds the limit, the least recently used
// paths are evicted.
//
// Example:
//
//	cache := index.NewDocumentCache(256 * 1024 * 1024) // 256MB limit
//	opts := index.DefaultLoadOptions()
//	opts.Cache = cache
//	files, errs := index.LoadFiles(paths, opts) // parses
//	files, errs = index.LoadFiles(paths, opts)  // reuses unchanged trees
type DocumentCache struct {
	mu     sync.Mutex
	limit  int64
	used   int64
	byPath map[string]*list.Element
	order  *list.List // front is most recently used

	hits, misses, evictions, rejected int
}

type cachedDoc struct {
	key  CacheKey
	doc  kml.Kml
	cost int64
}

// NewDocumentCache creates a cache holding up to limit bytes of estimated
// tree memory. A limit of 0 means unlimited.
func NewDocumentCache(limit int64) *DocumentCache {
	return &DocumentCache{
		limit:  limit,
		byPath: make(map[string]*list.Element),
		order:  list.New(),
	}
}

// Lookup returns the cached tree for key, if the cached version matches.
func (c *DocumentCache) Lookup(key CacheKey) (kml.Kml, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.byPath[key.Path]
	if !ok {
		c.misses++
		return nil, false
	}
	cd := elem.Value.(*cachedDoc)
	if cd.key.Size != key.Size || !cd.key.ModTime.Equal(key.ModTime) {
		c.remove(elem)
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(elem)
	c.hits++
	return cd.doc, true
}

// Store caches doc under key, replacing any other version of the same path
// and evicting least recently used paths to stay under the limit.
func (c *DocumentCache) Store(key CacheKey, doc kml.Kml) error {
	cost := estimateDocumentMemory(doc)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.byPath[key.Path]; ok {
		c.remove(elem)
	}
	if c.limit > 0 && cost > c.limit {
		c.rejected++
		return errors.Wrapf(ErrDocumentTooLarge, "%s: %d bytes > %d bytes max", key.Path, cost, c.limit)
	}
	for c.limit > 0 && c.used+cost > c.limit {
		back := c.order.Back()
		if back == nil {
			break
		}
		c.remove(back)
		c.evictions++
	}

	c.byPath[key.Path] = c.order.PushFront(&cachedDoc{key: key, doc: doc, cost: cost})
	c.used += cost
	return nil
}

// Load returns the cached tree for key or parses it with read and caches
// the result.
func (c *DocumentCache) Load(key CacheKey, read func() (kml.Kml, error)) (kml.Kml, error) {
	if doc, ok := c.Lookup(key); ok {
		return doc, nil
	}
	doc, err := read()
	if err != nil {
		return nil, err
	}
	if err := c.Store(key, doc); err != nil {
		if errors.Is(err, ErrDocumentTooLarge) {
			// Usable, just not cached; counted in Stats().Rejected.
			return doc, nil
		}
		return nil, err
	}
	return doc, nil
}

// Invalidate drops the cached tree for path, if any.
func (c *DocumentCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.byPath[path]; ok {
		c.remove(elem)
	}
}

// Reset empties the cache. Counters are kept.
func (c *DocumentCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPath = make(map[string]*list.Element)
	c.order.Init()
	c.used = 0
}

// remove unlinks elem. c.mu must be held.
func (c *DocumentCache) remove(elem *list.Element) {
	cd := c.order.Remove(elem).(*cachedDoc)
	delete(c.byPath, cd.key.Path)
	c.used -= cd.cost
}

// CacheStats is a snapshot of cache usage.
type CacheStats struct {
	Documents  int
	UsedMemory int64 // estimated bytes
	Limit      int64
	Hits       int
	Misses     int
	Evictions  int
	Rejected   int // documents over the limit, returned uncached
}

// Stats returns a snapshot of cache usage.
func (c *DocumentCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Documents:  len(c.byPath),
		UsedMemory: c.used,
		Limit:      c.limit,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
		Rejected:   c.rejected,
	}
}

// estimateDocumentMemory approximates the heap size of a tree: 1KB base,
// 512 bytes per node and 32 bytes per coordinate.
func estimateDocumentMemory(doc kml.Kml) int64 {
	if doc == nil {
		return 0
	}
	size := int64(1024)
	kml.Walk(doc, func(k kml.Kml) bool {
		size += 512
		size += int64(coordCount(k)) * 32
		return true
	})
	return size
}

func coordCount(k kml.Kml) int {
	switch v := k.(type) {
	case *kml.Point:
		return 1
	case *kml.LineString:
		return len(v.Coords)
	case *kml.LinearRing:
		return len(v.Coords)
	case *kml.Polygon:
		n := len(v.Outer.Coords)
		for _, r := range v.Inner {
			n += len(r.Coords)
		}
		return n
	}
	return 0
}

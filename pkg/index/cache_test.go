package index

import (
	"testing"
	"time"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
)

func pointDoc(name string, n int) kml.Kml {
	folder := &kml.Folder{Attrs: map[string]string{"id": name}}
	for i := 0; i < n; i++ {
		folder.Elements = append(folder.Elements, &kml.Placemark{
			Geometry: &kml.Point{Coord: kml.NewCoord(float64(i), float64(i))},
		})
	}
	return folder
}

func docID(doc kml.Kml) string {
	return doc.(*kml.Folder).Attrs["id"]
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func key(path string, size int64) CacheKey {
	return CacheKey{Path: path, Size: size, ModTime: epoch}
}

func TestCacheLoad(t *testing.T) {
	cache := NewDocumentCache(1024 * 1024) // 1MB

	reads := 0
	read := func(id string) func() (kml.Kml, error) {
		return func() (kml.Kml, error) {
			reads++
			return pointDoc(id, 1), nil
		}
	}

	doc, err := cache.Load(key("a.kml", 10), read("first"))
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	if docID(doc) != "first" || reads != 1 {
		t.Errorf("Expected one read of 'first', got %q after %d reads", docID(doc), reads)
	}

	// Same version: served from the cache
	doc, err = cache.Load(key("a.kml", 10), read("second"))
	if err != nil {
		t.Fatalf("Failed to get cached document: %v", err)
	}
	if docID(doc) != "first" || reads != 1 {
		t.Errorf("Expected cached 'first', got %q after %d reads", docID(doc), reads)
	}

	// Changed size: stale tree is replaced
	doc, err = cache.Load(key("a.kml", 11), read("third"))
	if err != nil {
		t.Fatalf("Failed to reload document: %v", err)
	}
	if docID(doc) != "third" || reads != 2 {
		t.Errorf("Expected reload of 'third', got %q after %d reads", docID(doc), reads)
	}

	stats := cache.Stats()
	if stats.Documents != 1 || stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestCacheModTime(t *testing.T) {
	cache := NewDocumentCache(0)
	if err := cache.Store(key("a.kml", 10), pointDoc("a", 1)); err != nil {
		t.Fatal(err)
	}
	touched := key("a.kml", 10)
	touched.ModTime = epoch.Add(time.Second)
	if _, ok := cache.Lookup(touched); ok {
		t.Error("Expected a newer modification time to miss")
	}
	if cache.Stats().Documents != 0 {
		t.Error("Stale document should be dropped on lookup")
	}
}

func TestCacheReadError(t *testing.T) {
	cache := NewDocumentCache(0)
	boom := errors.New("boom")

	_, err := cache.Load(key("bad.kml", 1), func() (kml.Kml, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Expected read error, got %v", err)
	}
	if cache.Stats().Documents != 0 {
		t.Error("Failed reads should not be cached")
	}
}

func TestCacheEviction(t *testing.T) {
	// Each five-point document is estimated at about 6.8KB
	cache := NewDocumentCache(10 * 1024)

	for i := 0; i < 10; i++ {
		name := string(rune('A' + i))
		if err := cache.Store(key(name, 1), pointDoc(name, 5)); err != nil {
			t.Fatalf("Failed to add document %s: %v", name, err)
		}
	}

	stats := cache.Stats()
	if stats.Documents != 1 {
		t.Errorf("Expected one document to fit, cache has %d", stats.Documents)
	}
	if stats.Evictions != 9 {
		t.Errorf("Expected 9 evictions, got %d", stats.Evictions)
	}
	if stats.UsedMemory > stats.Limit {
		t.Errorf("Cache exceeded limit: %d > %d", stats.UsedMemory, stats.Limit)
	}
	if _, ok := cache.Lookup(key("J", 1)); !ok {
		t.Error("Most recently stored document was evicted")
	}
}

func TestCacheTooLarge(t *testing.T) {
	cache := NewDocumentCache(2048)
	err := cache.Store(key("big.kml", 1), pointDoc("big", 100))
	if !errors.Is(err, ErrDocumentTooLarge) {
		t.Errorf("Expected ErrDocumentTooLarge, got %v", err)
	}

	// Load still returns the document without caching it
	doc, err := cache.Load(key("big.kml", 1), func() (kml.Kml, error) { return pointDoc("big", 100), nil })
	if err != nil || doc == nil {
		t.Fatalf("Expected document from read, got %v, %v", doc, err)
	}
	stats := cache.Stats()
	if stats.Documents != 0 || stats.Rejected != 2 {
		t.Errorf("Expected oversized document rejected twice and not cached, got %+v", stats)
	}
}

func TestCacheInvalidateReset(t *testing.T) {
	cache := NewDocumentCache(1024 * 1024)

	for _, name := range []string{"A", "B", "C"} {
		if err := cache.Store(key(name, 1), pointDoc(name, 2)); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}
	cache.Invalidate("B")
	if stats := cache.Stats(); stats.Documents != 2 {
		t.Errorf("Expected 2 documents after invalidate, got %d", stats.Documents)
	}

	cache.Reset()
	stats := cache.Stats()
	if stats.Documents != 0 || stats.UsedMemory != 0 {
		t.Errorf("Expected empty cache after reset, got %d documents, %d bytes",
			stats.Documents, stats.UsedMemory)
	}
}

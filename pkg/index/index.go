// Package index provides spatial queries over the placemarks of one or more
// KML documents.
//
// Each placemark with a geometry is flattened to a planar geometry, given a
// bounding box and geohash, and stored in an R-tree. This allows selecting
// the placemarks of a large document collection that intersect a region of
// interest without walking every tree.
//
// # Basic Usage
//
//	doc, err := kml.ReadFile("trails.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx := index.New()
//	idx.Add("trails.kml", doc)
//
//	hits := idx.Query(index.Bounds{
//	    MinLon: -122.5, MaxLon: -122.0,
//	    MinLat: 37.0, MaxLat: 37.5,
//	})
//	for _, e := range hits {
//	    fmt.Println(e.Source, e.Name, e.GeoHash)
//	}
package index

import (
	"sort"

	"github.com/beetlebugorg/kml/pkg/flatten"
	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/dhconnelly/rtreego"
	"github.com/twpayne/go-geom"
)

// GeoHashPrecision is the geohash length stored on each entry.
const GeoHashPrecision = 9

// Index stores placemark entries in an R-tree keyed on their bounds.
//
// An Index is not safe for concurrent mutation; concurrent queries on an
// index that is no longer being added to are fine.
type Index struct {
	rtree   *rtreego.Rtree // R-tree for fast spatial queries
	entries []*Entry
	bounds  Bounds
}

// Entry is one indexed placemark.
type Entry struct {
	Source    string // Document the placemark came from (usually a path)
	Name      string // Placemark name, "" when it has none
	Placemark *kml.Placemark
	Geometry  geom.T // Planar form of the placemark geometry
	Bounds    Bounds // Geographic extent of Geometry
	GeoHash   string // Geohash of the bounds centre, "" when out of range
}

// indexedEntry wraps an entry for R-tree storage.
type indexedEntry struct {
	entry *Entry
}

// Bounds implements rtreego.Spatial interface.
func (e *indexedEntry) Bounds() rtreego.Rect {
	return e.entry.Bounds.rect()
}

// New returns an empty index.
func New() *Index {
	// 2D, min=25 children, max=50 children
	return &Index{rtree: rtreego.NewTree(2, 25, 50)}
}

// Build returns an index over the placemarks of a single document.
func Build(source string, doc kml.Kml) *Index {
	idx := New()
	idx.Add(source, doc)
	return idx
}

// BuildFromFiles returns an index over loaded files.
func BuildFromFiles(files []File) *Index {
	idx := New()
	for _, f := range files {
		idx.Add(f.Path, f.Doc)
	}
	return idx
}

// Add indexes every placemark below doc and returns the number added.
//
// Placemarks without geometry, with geometry the flattener cannot convert
// (gx:Track, Model), or with empty geometry are skipped.
func (idx *Index) Add(source string, doc kml.Kml) int {
	added := 0
	opts := flatten.Options{SkipUnsupported: true}
	for _, pm := range kml.Placemarks(doc) {
		if pm.Geometry == nil {
			continue
		}
		t, err := flatten.Geometry(pm.Geometry, opts)
		if err != nil || t == nil {
			continue
		}
		b, ok := boundsOf(t)
		if !ok {
			continue
		}

		e := &Entry{
			Source:    source,
			Placemark: pm,
			Geometry:  t,
			Bounds:    b,
		}
		if pm.Name != nil {
			e.Name = *pm.Name
		}
		if hash, err := flatten.GeoHash(t, GeoHashPrecision); err == nil {
			e.GeoHash = hash
		}

		if len(idx.entries) == 0 {
			idx.bounds = b
		} else {
			idx.bounds = idx.bounds.Union(b)
		}
		idx.entries = append(idx.entries, e)
		idx.rtree.Insert(&indexedEntry{entry: e})
		added++
	}
	return added
}

// Query returns entries whose bounds intersect the given bounds, sorted by
// source and then by name.
//
// The R-tree may return candidates slightly outside the query because point
// features are padded; those are filtered out.
func (idx *Index) Query(bounds Bounds) []*Entry {
	spatials := idx.rtree.SearchIntersect(bounds.rect())

	result := make([]*Entry, 0, len(spatials))
	for _, spatial := range spatials {
		e := spatial.(*indexedEntry).entry
		if bounds.Intersects(e.Bounds) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Source != result[j].Source {
			return result[i].Source < result[j].Source
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Count returns the total number of entries in the index.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all entry bounds in the index.
func (idx *Index) Bounds() Bounds {
	return idx.bounds
}

// All returns all entries in insertion order.
func (idx *Index) All() []*Entry {
	return idx.entries
}

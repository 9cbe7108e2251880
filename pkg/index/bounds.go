package index

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beetlebugorg/kml/pkg/flatten"
	"github.com/cockroachdb/errors"
	"github.com/dhconnelly/rtreego"
	"github.com/twpayne/go-geom"
)

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// Union returns the smallest Bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, other.MinLon),
		MaxLon: max(b.MaxLon, other.MaxLon),
		MinLat: min(b.MinLat, other.MinLat),
		MaxLat: max(b.MaxLat, other.MaxLat),
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}

// ParseBounds parses "minLon,minLat,maxLon,maxLat".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, errors.Newf("bounds %q: want minLon,minLat,maxLon,maxLat", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, errors.Wrapf(err, "bounds %q", s)
		}
		v[i] = f
	}
	b := Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return Bounds{}, errors.Newf("bounds %q: minimum exceeds maximum", s)
	}
	return b, nil
}

// boundsOf returns the bounding box of a planar geometry.
func boundsOf(t geom.T) (Bounds, bool) {
	if t.Empty() {
		return Bounds{}, false
	}
	gb := flatten.Bounds(t)
	return Bounds{
		MinLon: gb.Min(0),
		MaxLon: gb.Max(0),
		MinLat: gb.Min(1),
		MaxLat: gb.Max(1),
	}, true
}

// rect converts b to an R-tree rectangle. R-tree requires non-zero
// dimensions, so point features (zero-area) get a small epsilon (~11 meters
// at the equator).
func (b Bounds) rect() rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}

	lonLength := b.MaxLon - b.MinLon
	latLength := b.MaxLat - b.MinLat

	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

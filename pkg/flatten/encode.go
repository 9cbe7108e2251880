package flatten

import (
	"bytes"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/pierrre/geohash"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/kml"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// DefaultDecimalDigits is the default number of decimal digits written for
// coordinates by ToWKT and ToGeoJSON.
const DefaultDecimalDigits = 9

// DefaultGeoHashPrecision is used by GeoHash when precision is not positive.
const DefaultGeoHashPrecision = 12

// GeoHashMaxPrecision is the largest precision GeoHash produces.
const GeoHashMaxPrecision = 20

// ToWKT encodes t as well-known text.
func ToWKT(t geom.T, maxDecimalDigits int) (string, error) {
	return wkt.Marshal(t, wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
}

// ToGeoJSON encodes t as a GeoJSON geometry object.
func ToGeoJSON(t geom.T, maxDecimalDigits int) ([]byte, error) {
	return geojson.Marshal(t, geojson.EncodeGeometryWithMaxDecimalDigits(maxDecimalDigits))
}

// ToKML encodes t as a KML geometry fragment.
func ToKML(t geom.T) (string, error) {
	element, err := kml.Encode(t)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := element.Write(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GeoHash returns the geohash of the centre of the bounding box of t.
//
// An empty geometry yields "". Bounds outside longitude/latitude range are
// an error.
func GeoHash(t geom.T, precision int) (string, error) {
	if t.Empty() {
		return "", nil
	}
	b := Bounds(t)
	loX, hiX, loY, hiY := b.Min(0), b.Max(0), b.Min(1), b.Max(1)
	if loX < -180 || hiX > 180 || loY < -90 || hiY > 90 {
		return "", errors.Newf(
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			loX, loY, hiX, hiY,
		)
	}

	if precision <= 0 {
		precision = DefaultGeoHashPrecision
	}
	if precision > GeoHashMaxPrecision {
		precision = GeoHashMaxPrecision
	}

	centerLng := loX + (hiX-loX)/2.0
	centerLat := loY + (hiY-loY)/2.0
	return geohash.Encode(centerLat, centerLng, precision), nil
}

// Bounds returns the bounding box of t. Unlike t.Bounds it also handles
// collections that nest other collections. An empty collection yields empty
// XY bounds.
func Bounds(t geom.T) *geom.Bounds {
	gc, ok := t.(*geom.GeometryCollection)
	if !ok {
		return t.Bounds()
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, g := range gc.Geoms() {
		if g.Empty() {
			continue
		}
		gb := Bounds(g)
		minX, minY = math.Min(minX, gb.Min(0)), math.Min(minY, gb.Min(1))
		maxX, maxY = math.Max(maxX, gb.Max(0)), math.Max(maxY, gb.Max(1))
	}
	if minX > maxX {
		return geom.NewBounds(geom.XY)
	}
	return geom.NewBounds(geom.XY).SetCoords(geom.Coord{minX, minY}, geom.Coord{maxX, maxY})
}

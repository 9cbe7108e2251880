// Package flatten turns KML document trees into planar geometries.
//
// The conversion is one-directional and lossy: styles, names, extended data
// and altitude modes are discarded, and only coordinates survive.
//
// # Basic Usage
//
//	doc, err := kml.ReadFile("trails.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	geoms, err := flatten.Flatten(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range geoms {
//	    s, _ := flatten.ToWKT(g, flatten.DefaultDecimalDigits)
//	    fmt.Println(s)
//	}
package flatten

import (
	"fmt"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/twpayne/go-geom"
)

// CannotConvertError indicates a geometry kind with no planar equivalent,
// such as a gx:Track or Model kept as a generic element.
type CannotConvertError struct {
	Kind string
}

func (e *CannotConvertError) Error() string {
	return fmt.Sprintf("cannot convert %s to a planar geometry", e.Kind)
}

// Options configures flattening.
type Options struct {
	// SkipUnsupported drops geometry kinds without a planar equivalent
	// instead of failing with CannotConvertError.
	// Default: false
	SkipUnsupported bool
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{SkipUnsupported: false}
}

// Flatten walks k and returns its geometries in document order.
//
// Root, Folder and Document concatenate the results of their children. A
// Placemark contributes its single geometry, or nothing when it has none; a
// MultiGeometry inside a Placemark becomes one *geom.GeometryCollection. A
// bare MultiGeometry contributes each of its members. Every other kind
// contributes nothing.
func Flatten(k kml.Kml) ([]geom.T, error) {
	return FlattenWithOptions(k, DefaultOptions())
}

// FlattenWithOptions is Flatten with explicit options.
func FlattenWithOptions(k kml.Kml, opts Options) ([]geom.T, error) {
	f := flattener{opts: opts}
	var out []geom.T
	if err := f.flatten(k, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Collection flattens k into a single geometry collection.
func Collection(k kml.Kml, opts Options) (*geom.GeometryCollection, error) {
	geoms, err := FlattenWithOptions(k, opts)
	if err != nil {
		return nil, err
	}
	gc := geom.NewGeometryCollection()
	if err := gc.Push(geoms...); err != nil {
		return nil, err
	}
	return gc, nil
}

// Geometry converts a single geometry value. It returns (nil, nil) for a
// skipped placeholder when opts.SkipUnsupported is set.
func Geometry(g kml.Geometry, opts Options) (geom.T, error) {
	f := flattener{opts: opts}
	return f.convert(g)
}

type flattener struct {
	opts Options
}

func (f *flattener) flatten(k kml.Kml, out *[]geom.T) error {
	switch v := k.(type) {
	case *kml.Root, *kml.Folder, *kml.Document:
		for _, c := range kml.Children(k) {
			if err := f.flatten(c, out); err != nil {
				return err
			}
		}
	case *kml.Placemark:
		if v.Geometry == nil {
			return nil
		}
		t, err := f.convert(v.Geometry)
		if err != nil {
			return err
		}
		if t != nil {
			*out = append(*out, t)
		}
	case *kml.MultiGeometry:
		for _, g := range v.Geometries {
			t, err := f.convert(g)
			if err != nil {
				return err
			}
			if t != nil {
				*out = append(*out, t)
			}
		}
	case *kml.Element:
		// Outside geometry position a generic element is just markup.
	case kml.Geometry:
		t, err := f.convert(v)
		if err != nil {
			return err
		}
		*out = append(*out, t)
	}
	return nil
}

// convert maps one geometry to its planar form.
func (f *flattener) convert(g kml.Geometry) (geom.T, error) {
	switch v := g.(type) {
	case *kml.Point:
		layout := layoutOf(v.Coord)
		return geom.NewPointFlat(layout, appendFlat(nil, layout, v.Coord)), nil
	case *kml.LineString:
		return lineString(v.Coords), nil
	case *kml.LinearRing:
		return lineString(v.Coords), nil
	case *kml.Polygon:
		return polygon(v), nil
	case *kml.MultiGeometry:
		gc := geom.NewGeometryCollection()
		for _, m := range v.Geometries {
			t, err := f.convert(m)
			if err != nil {
				return nil, err
			}
			if t == nil {
				continue
			}
			if err := gc.Push(t); err != nil {
				return nil, err
			}
		}
		return gc, nil
	case *kml.Element:
		if f.opts.SkipUnsupported {
			return nil, nil
		}
		return nil, &CannotConvertError{Kind: v.QName()}
	}
	return nil, &CannotConvertError{Kind: fmt.Sprintf("%T", g)}
}

func lineString(coords []kml.Coord[float64]) *geom.LineString {
	layout := layoutOf(coords...)
	flat := make([]float64, 0, len(coords)*layout.Stride())
	flat = appendFlat(flat, layout, coords...)
	return geom.NewLineStringFlat(layout, flat)
}

// polygon builds the outer ring followed by the holes. All rings share one
// layout.
func polygon(p *kml.Polygon) *geom.Polygon {
	all := append([]kml.Coord[float64](nil), p.Outer.Coords...)
	for _, r := range p.Inner {
		all = append(all, r.Coords...)
	}
	layout := layoutOf(all...)

	flat := make([]float64, 0, len(all)*layout.Stride())
	ends := make([]int, 0, 1+len(p.Inner))
	flat = appendFlat(flat, layout, p.Outer.Coords...)
	ends = append(ends, len(flat))
	for _, r := range p.Inner {
		flat = appendFlat(flat, layout, r.Coords...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(layout, flat, ends)
}

// layoutOf returns XYZ when every coordinate carries an altitude and XY
// otherwise.
func layoutOf(coords ...kml.Coord[float64]) geom.Layout {
	if len(coords) == 0 {
		return geom.XY
	}
	for _, c := range coords {
		if !c.HasZ() {
			return geom.XY
		}
	}
	return geom.XYZ
}

func appendFlat(flat []float64, layout geom.Layout, coords ...kml.Coord[float64]) []float64 {
	for _, c := range coords {
		flat = append(flat, c.X, c.Y)
		if layout == geom.XYZ {
			flat = append(flat, *c.Z)
		}
	}
	return flat
}

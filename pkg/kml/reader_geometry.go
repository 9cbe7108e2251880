package kml

import (
	"github.com/beetlebugorg/kml/internal/token"
)

// geomProps collects the fields shared by the coordinate-bearing geometries.
type geomProps struct {
	coords       []Coord[float64]
	extrude      bool
	tessellate   bool
	altitudeMode AltitudeMode
}

// readGeomProps reads the children of a Point, LineString or LinearRing.
// Coordinates are required and must not be empty.
func (r *Reader) readGeomProps(start token.Event) (geomProps, error) {
	var props geomProps
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "coordinates":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			props.coords, err = ParseCoords[float64](s)
		case "extrude":
			props.extrude, err = r.readBool(ev, false)
		case "tessellate":
			props.tessellate, err = r.readBool(ev, false)
		case "altitudeMode":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			props.altitudeMode, err = ParseAltitudeMode(ev.Name, s)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return props, err
	}
	if len(props.coords) == 0 {
		return props, &InvalidGeometryError{Type: start.Name, Reason: "missing coordinates"}
	}
	return props, nil
}

// readGeometry reads any element in geometry position. Kinds without a
// typed model become *Element placeholders.
func (r *Reader) readGeometry(ev token.Event) (Geometry, error) {
	switch ev.Name {
	case "Point":
		return r.readPoint(ev)
	case "LineString":
		return r.readLineString(ev)
	case "LinearRing":
		return r.readLinearRing(ev)
	case "Polygon":
		return r.readPolygon(ev)
	case "MultiGeometry":
		return r.readMultiGeometry(ev)
	}
	return r.readElement(ev)
}

func (r *Reader) readPoint(start token.Event) (*Point, error) {
	props, err := r.readGeomProps(start)
	if err != nil {
		return nil, err
	}
	return &Point{
		Coord:        props.coords[0],
		Extrude:      props.extrude,
		AltitudeMode: props.altitudeMode,
		Attrs:        start.Attrs,
	}, nil
}

func (r *Reader) readLineString(start token.Event) (*LineString, error) {
	props, err := r.readGeomProps(start)
	if err != nil {
		return nil, err
	}
	return &LineString{
		Coords:       props.coords,
		Extrude:      props.extrude,
		Tessellate:   props.tessellate,
		AltitudeMode: props.altitudeMode,
		Attrs:        start.Attrs,
	}, nil
}

func (r *Reader) readLinearRing(start token.Event) (*LinearRing, error) {
	props, err := r.readGeomProps(start)
	if err != nil {
		return nil, err
	}
	return &LinearRing{
		Coords:       props.coords,
		Extrude:      props.extrude,
		Tessellate:   props.tessellate,
		AltitudeMode: props.altitudeMode,
		Attrs:        start.Attrs,
	}, nil
}

// readPolygon reads a Polygon. The outer boundary must hold exactly one
// ring; every inner boundary group is appended to Inner.
func (r *Reader) readPolygon(start token.Event) (*Polygon, error) {
	poly := &Polygon{Inner: []LinearRing{}, Attrs: start.Attrs}
	hasOuter := false

	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch field(ev) {
		case "outerBoundaryIs":
			var rings []LinearRing
			if rings, err = r.readBoundary(ev); err != nil {
				return err
			}
			if len(rings) != 1 {
				return &InvalidGeometryError{Type: "Polygon", Reason: "outerBoundaryIs must contain exactly one LinearRing"}
			}
			poly.Outer = rings[0]
			hasOuter = true
		case "innerBoundaryIs":
			var rings []LinearRing
			if rings, err = r.readBoundary(ev); err != nil {
				return err
			}
			poly.Inner = append(poly.Inner, rings...)
		case "extrude":
			poly.Extrude, err = r.readBool(ev, false)
		case "tessellate":
			poly.Tessellate, err = r.readBool(ev, false)
		case "altitudeMode":
			var s string
			if s, err = r.readScalar(ev); err != nil {
				return err
			}
			poly.AltitudeMode, err = ParseAltitudeMode(ev.Name, s)
		default:
			err = r.skip(ev)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !hasOuter {
		return nil, &InvalidGeometryError{Type: "Polygon", Reason: "missing outerBoundaryIs"}
	}
	return poly, nil
}

// readBoundary reads the LinearRings of an outerBoundaryIs or
// innerBoundaryIs group.
func (r *Reader) readBoundary(start token.Event) ([]LinearRing, error) {
	var rings []LinearRing
	err := r.loop(start, func(ev token.Event) error {
		if ev.Name != "LinearRing" {
			return r.skip(ev)
		}
		ring, err := r.readLinearRing(ev)
		if err != nil {
			return err
		}
		rings = append(rings, *ring)
		return nil
	})
	return rings, err
}

func (r *Reader) readMultiGeometry(start token.Event) (*MultiGeometry, error) {
	mg := &MultiGeometry{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		g, err := r.readGeometry(ev)
		if err != nil {
			return err
		}
		mg.Geometries = append(mg.Geometries, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mg, nil
}

// unmodeledGeometry lists geometry kinds that have no typed model. Inside a
// Placemark they are kept in the geometry slot as an *Element.
var unmodeledGeometry = map[string]bool{
	"Model":      true,
	"Track":      true,
	"MultiTrack": true,
}

func (r *Reader) readPlacemark(start token.Event) (*Placemark, error) {
	pm := &Placemark{Attrs: start.Attrs}
	err := r.loop(start, func(ev token.Event) error {
		var err error
		switch {
		case field(ev) == "name":
			pm.Name, err = r.readOptional(ev)
		case field(ev) == "description":
			pm.Description, err = r.readOptional(ev)
		case field(ev) == "styleUrl":
			pm.StyleURL, err = r.readOptional(ev)
		case isGeometryName(ev.Name) || unmodeledGeometry[ev.Name]:
			pm.Geometry, err = r.readGeometry(ev)
		default:
			var child *Element
			if child, err = r.readElement(ev); err != nil {
				return err
			}
			pm.Children = append(pm.Children, child)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func isGeometryName(name string) bool {
	switch name {
	case "Point", "LineString", "LinearRing", "Polygon", "MultiGeometry":
		return true
	}
	return false
}

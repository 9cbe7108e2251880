package kml

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ValidateCoordinate validates a single coordinate pair.
// KML coordinates are WGS-84 longitude/latitude in decimal degrees.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &InvalidCoordinateError{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &InvalidCoordinateError{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateGeometry checks the coordinates of g and, for rings and polygons,
// that every ring is closed with at least four positions.
//
// Generic *Element placeholders are not checked.
func ValidateGeometry(g Geometry) error {
	switch v := g.(type) {
	case *Point:
		return validateCoords("Point", []Coord[float64]{v.Coord})
	case *LineString:
		if len(v.Coords) < 2 {
			return &InvalidGeometryError{Type: "LineString", Reason: fmt.Sprintf("needs at least 2 coordinates, got %d", len(v.Coords))}
		}
		return validateCoords("LineString", v.Coords)
	case *LinearRing:
		return validateRing("LinearRing", v.Coords)
	case *Polygon:
		if err := validateRing("Polygon", v.Outer.Coords); err != nil {
			return err
		}
		for i := range v.Inner {
			if err := validateRing("Polygon", v.Inner[i].Coords); err != nil {
				return errors.Wrapf(err, "inner ring %d", i)
			}
		}
	case *MultiGeometry:
		for i, m := range v.Geometries {
			if err := ValidateGeometry(m); err != nil {
				return errors.Wrapf(err, "member %d", i)
			}
		}
	}
	return nil
}

// Validate runs ValidateGeometry over every geometry in the tree rooted at k.
func Validate(k Kml) error {
	var err error
	Walk(k, func(n Kml) bool {
		if err != nil {
			return false
		}
		switch v := n.(type) {
		case *Placemark:
			if v.Geometry != nil {
				if gerr := ValidateGeometry(v.Geometry); gerr != nil {
					err = gerr
					if v.Name != nil {
						err = errors.Wrapf(gerr, "placemark %q", *v.Name)
					}
				}
			}
			return false
		case Geometry:
			if _, ok := v.(*Element); !ok {
				err = ValidateGeometry(v)
			}
			return false
		}
		return true
	})
	return err
}

func validateCoords(typ string, coords []Coord[float64]) error {
	for i, c := range coords {
		if err := ValidateCoordinate(c.Y, c.X); err != nil {
			return &InvalidGeometryError{
				Type:   typ,
				Reason: fmt.Sprintf("coordinate %d invalid: %v", i, err),
			}
		}
	}
	return nil
}

// validateRing requires a closed ring: first and last positions equal in x
// and y, and at least four positions in total.
func validateRing(typ string, coords []Coord[float64]) error {
	if len(coords) < 4 {
		return &InvalidGeometryError{Type: typ, Reason: fmt.Sprintf("ring needs at least 4 coordinates, got %d", len(coords))}
	}
	first, last := coords[0], coords[len(coords)-1]
	if first.X != last.X || first.Y != last.Y {
		return &InvalidGeometryError{Type: typ, Reason: "ring is not closed"}
	}
	return validateCoords(typ, coords)
}

package kml

import (
	"strconv"
	"strings"
	"unsafe"
)

// Float is the set of numeric types a Coord can carry.
type Float interface {
	~float32 | ~float64
}

// Coord is a single coordinate tuple: longitude, latitude and an optional
// altitude.
//
// The document model uses Coord[float64]. Values are formatted with the
// shortest representation that parses back to the same number, so no
// precision is lost across a write/read cycle.
type Coord[T Float] struct {
	X T
	Y T
	Z *T
}

// NewCoord returns a two-dimensional coordinate.
func NewCoord[T Float](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// NewCoordZ returns a coordinate with an altitude.
func NewCoordZ[T Float](x, y, z T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: &z}
}

// HasZ reports whether the coordinate carries an altitude.
func (c Coord[T]) HasZ() bool {
	return c.Z != nil
}

// String formats the coordinate as "x,y" or "x,y,z".
func (c Coord[T]) String() string {
	return FormatCoord(c)
}

// ParseCoord parses a single "x,y" or "x,y,z" tuple. Whitespace around each
// component is ignored.
func ParseCoord[T Float](s string) (Coord[T], error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return Coord[T]{}, &CoordParseError{Value: s, Reason: "need at least x and y"}
	}
	if len(parts) > 3 {
		return Coord[T]{}, &CoordParseError{Value: s, Reason: "more than three components"}
	}

	x, err := parseComponent[T]("x", parts[0])
	if err != nil {
		return Coord[T]{}, err
	}
	y, err := parseComponent[T]("y", parts[1])
	if err != nil {
		return Coord[T]{}, err
	}
	c := Coord[T]{X: x, Y: y}
	if len(parts) == 3 {
		z, err := parseComponent[T]("z", parts[2])
		if err != nil {
			return Coord[T]{}, err
		}
		c.Z = &z
	}
	return c, nil
}

// ParseCoords parses a whitespace separated list of coordinate tuples.
// Empty input yields an empty, non-nil slice.
func ParseCoords[T Float](s string) ([]Coord[T], error) {
	fields := strings.Fields(s)
	coords := make([]Coord[T], 0, len(fields))
	for _, f := range fields {
		c, err := ParseCoord[T](f)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// FormatCoord formats one tuple, comma separated.
func FormatCoord[T Float](c Coord[T]) string {
	var b strings.Builder
	appendCoord(&b, c)
	return b.String()
}

// FormatCoords formats a tuple sequence, one tuple per line.
func FormatCoords[T Float](coords []Coord[T]) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte('\n')
		}
		appendCoord(&b, c)
	}
	return b.String()
}

func appendCoord[T Float](b *strings.Builder, c Coord[T]) {
	b.WriteString(formatFloat(c.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(c.Y))
	if c.Z != nil {
		b.WriteByte(',')
		b.WriteString(formatFloat(*c.Z))
	}
}

func parseComponent[T Float](field, s string) (T, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, &NumParseError{Field: field, Value: s, Err: err}
	}
	return T(v), nil
}

func formatFloat[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'f', -1, bitSize[T]())
}

func bitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

package kml

// Geometry is a Kml value that can appear in geometry position: inside a
// Placemark or a MultiGeometry.
//
// Implementations are *Point, *LineString, *LinearRing, *Polygon,
// *MultiGeometry and *Element, the placeholder for geometry kinds the model
// does not know (gx:Track, Model, ...).
type Geometry interface {
	Kml
	geometry()
}

// Point is a single geographic location.
type Point struct {
	Coord        Coord[float64]
	Extrude      bool
	AltitudeMode AltitudeMode
	Attrs        map[string]string
}

// LineString is a connected set of line segments.
type LineString struct {
	Coords       []Coord[float64]
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Attrs        map[string]string
}

// LinearRing is a closed line string, normally a polygon boundary.
type LinearRing struct {
	Coords       []Coord[float64]
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Attrs        map[string]string
}

// Polygon is an outer ring with zero or more holes.
//
// Outer is required: the Reader rejects a Polygon without outerBoundaryIs.
type Polygon struct {
	Outer        LinearRing
	Inner        []LinearRing
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Attrs        map[string]string
}

// MultiGeometry groups geometries, including nested MultiGeometry values.
type MultiGeometry struct {
	Geometries []Geometry
	Attrs      map[string]string
}

func (*Point) Tag() string         { return "Point" }
func (*LineString) Tag() string    { return "LineString" }
func (*LinearRing) Tag() string    { return "LinearRing" }
func (*Polygon) Tag() string       { return "Polygon" }
func (*MultiGeometry) Tag() string { return "MultiGeometry" }

func (*Point) kml()         {}
func (*LineString) kml()    {}
func (*LinearRing) kml()    {}
func (*Polygon) kml()       {}
func (*MultiGeometry) kml() {}

func (*Point) geometry()         {}
func (*LineString) geometry()    {}
func (*LinearRing) geometry()    {}
func (*Polygon) geometry()       {}
func (*MultiGeometry) geometry() {}
func (*Element) geometry()       {}

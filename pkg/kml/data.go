package kml

// SchemaData holds typed values for a custom schema, normally inside
// ExtendedData.
type SchemaData struct {
	Data   []SimpleData
	Arrays []SimpleArrayData
	Attrs  map[string]string // schemaUrl lives here
}

// SimpleData is one named value. Name is required.
type SimpleData struct {
	Name  string
	Value string
	Attrs map[string]string
}

// SimpleArrayData is a named list of values. Name is required.
type SimpleArrayData struct {
	Name   string
	Values []string
	Attrs  map[string]string
}

// ResourceMap maps texture paths of a Model to their archive locations.
type ResourceMap struct {
	Aliases []Alias
	Attrs   map[string]string
}

// Alias maps one texture path.
type Alias struct {
	TargetHref *string
	SourceHref *string
	Attrs      map[string]string
}

// Scale scales a Model along each axis.
type Scale struct {
	X, Y, Z float64
	Attrs   map[string]string
}

// NewScale returns a unit Scale.
func NewScale() *Scale {
	return &Scale{X: 1, Y: 1, Z: 1}
}

// Orientation rotates a Model, in degrees.
type Orientation struct {
	Roll, Tilt, Heading float64
	Attrs               map[string]string
}

// Location positions a Model.
type Location struct {
	Longitude, Latitude, Altitude float64
	Attrs                         map[string]string
}

func (*SchemaData) Tag() string      { return "SchemaData" }
func (*SimpleData) Tag() string      { return "SimpleData" }
func (*SimpleArrayData) Tag() string { return "SimpleArrayData" }
func (*ResourceMap) Tag() string     { return "ResourceMap" }
func (*Alias) Tag() string           { return "Alias" }
func (*Scale) Tag() string           { return "Scale" }
func (*Orientation) Tag() string     { return "Orientation" }
func (*Location) Tag() string        { return "Location" }

func (*SchemaData) kml()      {}
func (*SimpleData) kml()      {}
func (*SimpleArrayData) kml() {}
func (*ResourceMap) kml()     {}
func (*Alias) kml()           {}
func (*Scale) kml()           {}
func (*Orientation) kml()     {}
func (*Location) kml()        {}

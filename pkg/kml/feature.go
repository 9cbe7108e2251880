package kml

// Placemark is a feature with an optional geometry.
//
// Children holds every child element the Reader does not map to a field
// (ExtendedData, Style, TimeStamp, ...), in source order.
type Placemark struct {
	Name        *string
	Description *string
	StyleURL    *string
	Geometry    Geometry
	Children    []*Element
	Attrs       map[string]string
}

func (*Placemark) Tag() string { return "Placemark" }
func (*Placemark) kml()        {}

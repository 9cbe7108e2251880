package kml

// Kml is any element of a KML document tree.
//
// The set of implementations is closed: *Root, the geometry kinds, *Placemark,
// *Folder, *Document, the style, link, data and resource kinds, and *Element
// for everything the model does not recognize. Use a type switch to
// discriminate.
type Kml interface {
	// Tag returns the XML local name the element is read from and written as.
	Tag() string
	kml()
}

// Root is the document root, the <kml> element.
//
// The Reader also synthesizes a Root when the input holds more than one
// top-level element; its Version is then VersionUnknown and Attrs is empty.
type Root struct {
	Version  Version
	Attrs    map[string]string // xmlns is folded into Version when recognized
	Elements []Kml
}

// Folder is an ordered group of features.
type Folder struct {
	Attrs    map[string]string
	Elements []Kml
}

// Document is a container for features and shared styles.
type Document struct {
	Attrs    map[string]string
	Elements []Kml
}

// Element is the generic form of any element the model does not recognize.
//
// Elements are lossless for attributes, trimmed text content and nested
// elements. Mixed content keeps its text but not the relative position of
// text and children.
type Element struct {
	Prefix   string // namespace prefix, "gx" for <gx:Track>
	Name     string
	Attrs    map[string]string
	Content  *string
	Children []*Element
}

// QName returns the element name including its namespace prefix.
func (e *Element) QName() string {
	if e.Prefix == "" {
		return e.Name
	}
	return e.Prefix + ":" + e.Name
}

// Child returns the first direct child with the given local name.
func (e *Element) Child(name string) (*Element, bool) {
	for _, c := range e.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Text returns the element content, or "" when there is none.
func (e *Element) Text() string {
	if e.Content == nil {
		return ""
	}
	return *e.Content
}

func (*Root) Tag() string     { return "kml" }
func (*Folder) Tag() string   { return "Folder" }
func (*Document) Tag() string { return "Document" }
func (e *Element) Tag() string {
	return e.Name
}

func (*Root) kml()     {}
func (*Folder) kml()   {}
func (*Document) kml() {}
func (*Element) kml()  {}

// Children returns the direct child elements of a container kind (Root,
// Folder, Document) and nil for everything else.
func Children(k Kml) []Kml {
	switch v := k.(type) {
	case *Root:
		return v.Elements
	case *Folder:
		return v.Elements
	case *Document:
		return v.Elements
	}
	return nil
}

// Walk calls fn for k and every element below it in document order. Walking
// stops early when fn returns false for a node; its children are skipped.
//
// Placemark geometry and MultiGeometry members are visited; nested
// sub-styles, links and generic children are not.
func Walk(k Kml, fn func(Kml) bool) {
	if k == nil || !fn(k) {
		return
	}
	switch v := k.(type) {
	case *Placemark:
		if v.Geometry != nil {
			Walk(v.Geometry, fn)
		}
	case *MultiGeometry:
		for _, g := range v.Geometries {
			Walk(g, fn)
		}
	default:
		for _, c := range Children(k) {
			Walk(c, fn)
		}
	}
}

// Placemarks returns every placemark below k in document order.
func Placemarks(k Kml) []*Placemark {
	var out []*Placemark
	Walk(k, func(n Kml) bool {
		if p, ok := n.(*Placemark); ok {
			out = append(out, p)
			return false
		}
		return true
	})
	return out
}

func ptr[T any](v T) *T { return &v }

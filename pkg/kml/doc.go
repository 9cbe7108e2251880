// Package kml reads and writes KML, the XML dialect for geographic
// annotation used by Google Earth and most GIS tools.
//
// Documents are parsed into a typed tree: geometries, placemarks, folders,
// styles, links and extended data each have their own struct, and anything
// the model does not recognize is kept as a generic *Element so nothing is
// lost. Writing a tree back out and reading it again yields an equal tree.
//
// # Basic Usage
//
//	doc, err := kml.ReadFile("trails.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, pm := range kml.Placemarks(doc) {
//	    if p, ok := pm.Geometry.(*kml.Point); ok {
//	        fmt.Printf("%s at %v\n", *pm.Name, p.Coord)
//	    }
//	}
//
// # Archives
//
// KMZ files are zip archives; the first entry whose name ends in .kml is the
// document:
//
//	doc, err := kml.ReadKMZ("trails.kmz")
//
// # Document Shape
//
// Read returns the single top-level element of the input. A file with a
// <kml> root yields a *Root; a bare fragment such as "<Point>...</Point>"
// yields the *Point itself. Several top-level elements are wrapped in a
// synthetic *Root in source order.
//
// Discriminate elements with a type switch:
//
//	switch v := k.(type) {
//	case *kml.Root:
//	    // v.Version, v.Elements
//	case *kml.Placemark:
//	    // v.Name, v.Geometry, v.Children
//	case *kml.Element:
//	    // unrecognized: v.Name, v.Attrs, v.Content, v.Children
//	}
//
// # Writing
//
//	out, err := kml.MarshalIndent(doc)
//
// # Errors
//
// Parsing stops at the first problem and returns a typed error: use
// errors.As with *MalformedError, *InvalidEventError, *InvalidEnumError,
// *InvalidBoolError, *NumParseError, *CoordParseError,
// *InvalidGeometryError or *InvalidVersionError, and errors.Is with
// ErrNoElements or ErrInvalidInput.
//
// # Planar Geometry
//
// The flatten package converts a tree into go-geom geometries for spatial
// processing, and the index package builds an R-tree over placemarks.
package kml

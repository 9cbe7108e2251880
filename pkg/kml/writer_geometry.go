package kml

func (w *Writer) writeGeometry(g Geometry) {
	switch v := g.(type) {
	case *Point:
		w.start("Point", v.Attrs)
		w.flag("extrude", v.Extrude)
		w.text("altitudeMode", v.AltitudeMode.String())
		w.text("coordinates", FormatCoord(v.Coord))
		w.end()
	case *LineString:
		w.start("LineString", v.Attrs)
		w.writeLineProps(v.Extrude, v.Tessellate, v.AltitudeMode)
		w.text("coordinates", FormatCoords(v.Coords))
		w.end()
	case *LinearRing:
		w.writeLinearRing(v)
	case *Polygon:
		w.writePolygon(v)
	case *MultiGeometry:
		w.start("MultiGeometry", v.Attrs)
		for _, m := range v.Geometries {
			w.writeGeometry(m)
		}
		w.end()
	case *Element:
		w.writeElement(v)
	}
}

func (w *Writer) writeLineProps(extrude, tessellate bool, mode AltitudeMode) {
	w.flag("extrude", extrude)
	w.flag("tessellate", tessellate)
	w.text("altitudeMode", mode.String())
}

func (w *Writer) writeLinearRing(ring *LinearRing) {
	w.start("LinearRing", ring.Attrs)
	w.writeLineProps(ring.Extrude, ring.Tessellate, ring.AltitudeMode)
	w.text("coordinates", FormatCoords(ring.Coords))
	w.end()
}

// writePolygon writes each inner ring in its own innerBoundaryIs.
func (w *Writer) writePolygon(poly *Polygon) {
	w.start("Polygon", poly.Attrs)
	w.writeLineProps(poly.Extrude, poly.Tessellate, poly.AltitudeMode)

	w.start("outerBoundaryIs", nil)
	w.writeLinearRing(&poly.Outer)
	w.end()

	for i := range poly.Inner {
		w.start("innerBoundaryIs", nil)
		w.writeLinearRing(&poly.Inner[i])
		w.end()
	}
	w.end()
}

package kml

import (
	xw "github.com/shabbyrobe/xmlwriter"
)

func (w *Writer) writeStyle(s *Style) {
	w.startID("Style", s.Attrs, s.ID)
	if s.Icon != nil {
		w.writeIconStyle(s.Icon)
	}
	if s.Label != nil {
		w.writeLabelStyle(s.Label)
	}
	if s.Line != nil {
		w.writeLineStyle(s.Line)
	}
	if s.Poly != nil {
		w.writePolyStyle(s.Poly)
	}
	if s.Balloon != nil {
		w.writeBalloonStyle(s.Balloon)
	}
	if s.List != nil {
		w.writeListStyle(s.List)
	}
	w.end()
}

func (w *Writer) writeStyleMap(sm *StyleMap) {
	w.startID("StyleMap", sm.Attrs, sm.ID)
	for i := range sm.Pairs {
		w.writePair(&sm.Pairs[i])
	}
	w.end()
}

func (w *Writer) writePair(p *Pair) {
	w.start("Pair", p.Attrs)
	w.text("key", p.Key)
	w.text("styleUrl", p.StyleURL)
	w.end()
}

func (w *Writer) writeBalloonStyle(bs *BalloonStyle) {
	w.startID("BalloonStyle", bs.Attrs, bs.ID)
	w.optText("bgColor", bs.BgColor)
	w.text("textColor", bs.TextColor)
	w.optText("text", bs.Text)
	if bs.Display {
		w.text("displayMode", "default")
	} else {
		w.text("displayMode", "hide")
	}
	w.end()
}

func (w *Writer) writeIconStyle(is *IconStyle) {
	w.startID("IconStyle", is.Attrs, is.ID)
	w.text("color", is.Color)
	w.text("colorMode", is.ColorMode.String())
	w.float("scale", is.Scale)
	w.float("heading", is.Heading)
	if is.Icon != nil {
		w.writeLink("Icon", (*Link)(is.Icon))
	}
	if is.HotSpot != nil {
		w.writeHotSpot(is.HotSpot)
	}
	w.end()
}

func (w *Writer) writeHotSpot(v *Vec2) {
	if w.err != nil {
		return
	}
	w.check(w.out.Write(xw.Elem{Name: "hotSpot", Attrs: []xw.Attr{
		{Name: "x", Value: formatFloat(v.X)},
		{Name: "y", Value: formatFloat(v.Y)},
		{Name: "xunits", Value: v.XUnits.String()},
		{Name: "yunits", Value: v.YUnits.String()},
	}}))
}

func (w *Writer) writeLabelStyle(ls *LabelStyle) {
	w.startID("LabelStyle", ls.Attrs, ls.ID)
	w.text("color", ls.Color)
	w.text("colorMode", ls.ColorMode.String())
	w.float("scale", ls.Scale)
	w.end()
}

func (w *Writer) writeLineStyle(ls *LineStyle) {
	w.startID("LineStyle", ls.Attrs, ls.ID)
	w.text("color", ls.Color)
	w.text("colorMode", ls.ColorMode.String())
	w.float("width", ls.Width)
	w.end()
}

func (w *Writer) writePolyStyle(ps *PolyStyle) {
	w.startID("PolyStyle", ps.Attrs, ps.ID)
	w.text("color", ps.Color)
	w.text("colorMode", ps.ColorMode.String())
	w.flag("fill", ps.Fill)
	w.flag("outline", ps.Outline)
	w.end()
}

func (w *Writer) writeListStyle(ls *ListStyle) {
	w.startID("ListStyle", ls.Attrs, ls.ID)
	w.text("listItemType", ls.ListItemType.String())
	w.text("bgColor", ls.BgColor)
	w.text("maxSnippetLines", formatUint32(ls.MaxSnippetLines))
	w.end()
}

func (w *Writer) writeLink(name string, l *Link) {
	w.startID(name, l.Attrs, l.ID)
	w.optText("href", l.Href)
	w.text("refreshMode", l.RefreshMode.String())
	w.float("refreshInterval", l.RefreshInterval)
	w.text("viewRefreshMode", l.ViewRefreshMode.String())
	w.float("viewRefreshTime", l.ViewRefreshTime)
	w.float("viewBoundScale", l.ViewBoundScale)
	w.optText("viewFormat", l.ViewFormat)
	w.optText("httpQuery", l.HTTPQuery)
	w.end()
}

func (w *Writer) writeAlias(a *Alias) {
	w.start("Alias", a.Attrs)
	w.optText("targetHref", a.TargetHref)
	w.optText("sourceHref", a.SourceHref)
	w.end()
}

func (w *Writer) writeSchemaData(sd *SchemaData) {
	w.start("SchemaData", sd.Attrs)
	for i := range sd.Data {
		w.writeSimpleData(&sd.Data[i])
	}
	for i := range sd.Arrays {
		w.writeSimpleArrayData(&sd.Arrays[i])
	}
	w.end()
}

func (w *Writer) writeSimpleData(d *SimpleData) {
	w.startNamed("SimpleData", d.Attrs, d.Name)
	if w.err == nil {
		w.check(w.out.Write(xw.Text(d.Value)))
	}
	w.end()
}

func (w *Writer) writeSimpleArrayData(a *SimpleArrayData) {
	w.startNamed("SimpleArrayData", a.Attrs, a.Name)
	for _, v := range a.Values {
		w.text("value", v)
	}
	w.end()
}

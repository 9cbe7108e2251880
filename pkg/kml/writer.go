package kml

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	xw "github.com/shabbyrobe/xmlwriter"
)

// Writer serializes document trees as XML.
//
// Child elements are written in the order the Reader expects them and every
// scalar with a default is written explicitly, so reading the output yields a
// tree equal to the input. Optional fields that are nil are omitted.
type Writer struct {
	out  *xw.Writer
	opts WriteOptions
	err  error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer, opts WriteOptions) *Writer {
	var xopts []xw.Option
	if opts.Indent {
		xopts = append(xopts, xw.WithIndent())
	}
	return &Writer{out: xw.Open(w, xopts...), opts: opts}
}

// Write serializes k and flushes the underlying writer. The only failure
// mode is an I/O error from the sink.
func (w *Writer) Write(k Kml) error {
	if w.opts.Declaration {
		w.check(w.out.Start(xw.Doc{}))
	}
	w.writeKml(k)
	w.check(w.out.EndAllFlush())
	if w.err != nil {
		return errors.Wrap(w.err, "write kml")
	}
	return nil
}

// Write serializes k to w.
func Write(w io.Writer, k Kml, opts WriteOptions) error {
	return NewWriter(w, opts).Write(k)
}

// Marshal returns the compact XML form of k.
func Marshal(k Kml) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, k, DefaultWriteOptions()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent returns the indented XML form of k with an XML declaration.
func MarshalIndent(k Kml) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, k, WriteOptions{Indent: true, Declaration: true}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// check records the first error; later writes become no-ops.
func (w *Writer) check(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// start opens an element with its attributes sorted by key.
func (w *Writer) start(name string, attrs map[string]string) {
	w.open(name, orderAttrs(attrs, nil))
}

// startID opens an element with its id attribute, when set, written first.
func (w *Writer) startID(name string, attrs map[string]string, id string) {
	var first *xw.Attr
	if id != "" {
		first = &xw.Attr{Name: "id", Value: id}
	}
	w.open(name, orderAttrs(attrs, first))
}

// startNamed opens an element whose name attribute is required and written
// first.
func (w *Writer) startNamed(name string, attrs map[string]string, value string) {
	w.open(name, orderAttrs(attrs, &xw.Attr{Name: "name", Value: value}))
}

func (w *Writer) open(name string, attrs []xw.Attr) {
	if w.err != nil {
		return
	}
	prefix, local := splitQName(name)
	w.check(w.out.Start(xw.Elem{Prefix: prefix, Name: local, Attrs: attrs}))
}

func (w *Writer) end() {
	if w.err != nil {
		return
	}
	w.check(w.out.EndElem())
}

// text writes a leaf element holding s.
func (w *Writer) text(name, s string) {
	if w.err != nil {
		return
	}
	w.check(w.out.Write(xw.Elem{Name: name, Content: []xw.Writable{xw.Text(s)}}))
}

func (w *Writer) optText(name string, s *string) {
	if s != nil {
		w.text(name, *s)
	}
}

func (w *Writer) float(name string, v float64) {
	w.text(name, formatFloat(v))
}

func (w *Writer) flag(name string, v bool) {
	w.text(name, formatBool(v))
}

func orderAttrs(attrs map[string]string, first *xw.Attr) []xw.Attr {
	out := make([]xw.Attr, 0, len(attrs)+1)
	if first != nil {
		out = append(out, *first)
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if first == nil || k != first.Name {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		prefix, local := splitQName(k)
		out = append(out, xw.Attr{Prefix: prefix, Name: local, Value: attrs[k]})
	}
	return out
}

func splitQName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func (w *Writer) writeKml(k Kml) {
	switch v := k.(type) {
	case *Root:
		w.writeRoot(v)
	case *Folder:
		w.start("Folder", v.Attrs)
		w.writeElements(v.Elements)
		w.end()
	case *Document:
		w.start("Document", v.Attrs)
		w.writeElements(v.Elements)
		w.end()
	case *Placemark:
		w.writePlacemark(v)
	case Geometry:
		w.writeGeometry(v)
	case *Style:
		w.writeStyle(v)
	case *StyleMap:
		w.writeStyleMap(v)
	case *Pair:
		w.writePair(v)
	case *BalloonStyle:
		w.writeBalloonStyle(v)
	case *IconStyle:
		w.writeIconStyle(v)
	case *LabelStyle:
		w.writeLabelStyle(v)
	case *LineStyle:
		w.writeLineStyle(v)
	case *PolyStyle:
		w.writePolyStyle(v)
	case *ListStyle:
		w.writeListStyle(v)
	case *Link:
		w.writeLink("Link", v)
	case *Icon:
		w.writeLink("Icon", (*Link)(v))
	case *Scale:
		w.start("Scale", v.Attrs)
		w.float("x", v.X)
		w.float("y", v.Y)
		w.float("z", v.Z)
		w.end()
	case *Orientation:
		w.start("Orientation", v.Attrs)
		w.float("heading", v.Heading)
		w.float("tilt", v.Tilt)
		w.float("roll", v.Roll)
		w.end()
	case *Location:
		w.start("Location", v.Attrs)
		w.float("longitude", v.Longitude)
		w.float("latitude", v.Latitude)
		w.float("altitude", v.Altitude)
		w.end()
	case *ResourceMap:
		w.start("ResourceMap", v.Attrs)
		for i := range v.Aliases {
			w.writeAlias(&v.Aliases[i])
		}
		w.end()
	case *Alias:
		w.writeAlias(v)
	case *SchemaData:
		w.writeSchemaData(v)
	case *SimpleData:
		w.writeSimpleData(v)
	case *SimpleArrayData:
		w.writeSimpleArrayData(v)
	}
}

func (w *Writer) writeElements(elements []Kml) {
	for _, e := range elements {
		w.writeKml(e)
	}
}

func (w *Writer) writeRoot(root *Root) {
	attrs := root.Attrs
	if ns := root.Version.Namespace(); ns != "" {
		if _, ok := attrs["xmlns"]; !ok {
			attrs = make(map[string]string, len(root.Attrs)+1)
			for k, v := range root.Attrs {
				attrs[k] = v
			}
			attrs["xmlns"] = ns
		}
	}
	w.start("kml", attrs)
	w.writeElements(root.Elements)
	w.end()
}

func (w *Writer) writePlacemark(pm *Placemark) {
	w.start("Placemark", pm.Attrs)
	w.optText("name", pm.Name)
	w.optText("description", pm.Description)
	w.optText("styleUrl", pm.StyleURL)
	for _, c := range pm.Children {
		w.writeElement(c)
	}
	if pm.Geometry != nil {
		w.writeGeometry(pm.Geometry)
	}
	w.end()
}

func (w *Writer) writeElement(e *Element) {
	w.start(e.QName(), e.Attrs)
	if e.Content != nil {
		w.check(w.out.Write(xw.Text(*e.Content)))
	}
	for _, c := range e.Children {
		w.writeElement(c)
	}
	w.end()
}

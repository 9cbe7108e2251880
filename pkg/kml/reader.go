package kml

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/beetlebugorg/kml/internal/token"
	"github.com/cockroachdb/errors"
)

// Reader builds a document tree from a stream of XML tokens.
//
// Parsing is recursive descent keyed on element local names. Each kind has
// its own read function that consumes events up to and including its own
// close tag, so a caller never sees the closes of nested elements.
//
// A Reader holds cursor state and must not be used from several goroutines.
type Reader struct {
	src  token.Source
	opts ReadOptions
}

// NewReader returns a Reader over XML from r.
func NewReader(r io.Reader, opts ReadOptions) *Reader {
	src := token.NewXMLSource(r, token.Options{
		Strict:        opts.Strict,
		DecodeCharset: opts.DecodeCharset,
	})
	return &Reader{src: src, opts: opts}
}

// newSourceReader returns a Reader over an existing token source.
func newSourceReader(src token.Source, opts ReadOptions) *Reader {
	return &Reader{src: src, opts: opts}
}

// Read parses the whole input.
//
// An input with a single top-level element yields that element. Several
// top-level elements are wrapped in a synthetic *Root. An input with no
// elements returns ErrNoElements. The first error aborts the parse; no
// partial tree is returned.
func (r *Reader) Read() (Kml, error) {
	elements, err := r.readElements("")
	if err != nil {
		return nil, err
	}

	var result Kml
	switch len(elements) {
	case 0:
		return nil, ErrNoElements
	case 1:
		result = elements[0]
	default:
		result = &Root{Attrs: map[string]string{}, Elements: elements}
	}

	if r.opts.ValidateGeometry {
		if err := Validate(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// next returns the next event, converting tokenizer failures.
func (r *Reader) next() (token.Event, error) {
	ev, err := r.src.Next()
	if err != nil {
		var offset int64
		if x, ok := r.src.(*token.XMLSource); ok {
			offset = x.Offset()
		}
		return token.Event{}, &MalformedError{Offset: offset, Err: err}
	}
	return ev, nil
}

// readElements reads sibling elements until the close of end, or until end
// of input when end is "".
func (r *Reader) readElements(end string) ([]Kml, error) {
	var elements []Kml
	for {
		ev, err := r.next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case token.Open:
			k, err := r.dispatch(ev)
			if err != nil {
				return nil, err
			}
			elements = append(elements, k)
		case token.Close:
			if ev.Name == end {
				return elements, nil
			}
			return nil, &InvalidEventError{Element: containerName(end), Event: "close of <" + ev.QName() + ">"}
		case token.EOF:
			if end == "" {
				return elements, nil
			}
			return nil, &InvalidEventError{Element: end, Event: "end of input"}
		}
	}
}

func containerName(end string) string {
	if end == "" {
		return "document"
	}
	return end
}

// dispatch reads the element opened by ev into its model kind.
func (r *Reader) dispatch(ev token.Event) (Kml, error) {
	switch ev.Name {
	case "kml":
		return r.readRoot(ev)
	case "Point", "LineString", "LinearRing", "Polygon", "MultiGeometry":
		return r.readGeometry(ev)
	case "Placemark":
		return r.readPlacemark(ev)
	case "Folder":
		elements, err := r.readElements(ev.Name)
		if err != nil {
			return nil, err
		}
		return &Folder{Attrs: ev.Attrs, Elements: elements}, nil
	case "Document":
		elements, err := r.readElements(ev.Name)
		if err != nil {
			return nil, err
		}
		return &Document{Attrs: ev.Attrs, Elements: elements}, nil
	case "Style":
		return r.readStyle(ev)
	case "StyleMap":
		return r.readStyleMap(ev)
	case "Pair":
		return r.readPair(ev)
	case "BalloonStyle":
		return r.readBalloonStyle(ev)
	case "IconStyle":
		return r.readIconStyle(ev)
	case "LabelStyle":
		return r.readLabelStyle(ev)
	case "LineStyle":
		return r.readLineStyle(ev)
	case "PolyStyle":
		return r.readPolyStyle(ev)
	case "ListStyle":
		return r.readListStyle(ev)
	case "Link":
		return r.readLink(ev)
	case "Icon":
		link, err := r.readLink(ev)
		if err != nil {
			return nil, err
		}
		return (*Icon)(link), nil
	case "Scale":
		return r.readScale(ev)
	case "Orientation":
		return r.readOrientation(ev)
	case "Location":
		return r.readLocation(ev)
	case "ResourceMap":
		return r.readResourceMap(ev)
	case "Alias":
		return r.readAlias(ev)
	case "SchemaData":
		return r.readSchemaData(ev)
	case "SimpleData":
		return r.readSimpleData(ev)
	case "SimpleArrayData":
		return r.readSimpleArrayData(ev)
	}
	return r.readElement(ev)
}

func (r *Reader) readRoot(ev token.Event) (*Root, error) {
	root := &Root{Attrs: ev.Attrs}
	if ns, ok := ev.Attrs["xmlns"]; ok {
		v, known, err := VersionFromNamespace(ns)
		if err != nil {
			return nil, err
		}
		if known {
			root.Version = v
			delete(root.Attrs, "xmlns")
		}
	}

	elements, err := r.readElements(ev.Name)
	if err != nil {
		return nil, err
	}
	root.Elements = elements
	return root, nil
}

// readElement captures an unrecognized element and everything below it.
func (r *Reader) readElement(start token.Event) (*Element, error) {
	e := &Element{Prefix: start.Prefix, Name: start.Name, Attrs: start.Attrs}
	var text strings.Builder
	for {
		ev, err := r.next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case token.Open:
			child, err := r.readElement(ev)
			if err != nil {
				return nil, err
			}
			e.Children = append(e.Children, child)
		case token.Text:
			text.Write(ev.Data)
		case token.Close:
			if s := lossyString(text.String()); s != "" {
				e.Content = &s
			}
			return e, nil
		case token.EOF:
			return nil, &InvalidEventError{Element: start.QName(), Event: "end of input"}
		}
	}
}

// readScalar reads the text content of a leaf element whose open event has
// just been consumed, up to and including its close. Surrounding whitespace
// is trimmed; invalid UTF-8 is replaced rather than rejected.
func (r *Reader) readScalar(start token.Event) (string, error) {
	var text strings.Builder
	for {
		ev, err := r.next()
		if err != nil {
			return "", err
		}
		switch ev.Kind {
		case token.Text:
			text.Write(ev.Data)
		case token.Close:
			return lossyString(text.String()), nil
		case token.Open:
			return "", &InvalidEventError{Element: start.QName(), Event: "element <" + ev.QName() + ">"}
		case token.EOF:
			return "", &InvalidEventError{Element: start.QName(), Event: "end of input"}
		}
	}
}

func (r *Reader) readOptional(start token.Event) (*string, error) {
	s, err := r.readScalar(start)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Reader) readFloat(start token.Event) (float64, error) {
	s, err := r.readScalar(start)
	if err != nil {
		return 0, err
	}
	return parseFloat(start.Name, s)
}

func (r *Reader) readBool(start token.Event, words bool) (bool, error) {
	s, err := r.readScalar(start)
	if err != nil {
		return false, err
	}
	return parseBool(start.Name, s, words)
}

func (r *Reader) readColorMode(start token.Event) (ColorMode, error) {
	s, err := r.readScalar(start)
	if err != nil {
		return 0, err
	}
	return ParseColorMode(start.Name, s)
}

// skip consumes the rest of the element opened by start.
func (r *Reader) skip(start token.Event) error {
	depth := 1
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case token.Open:
			depth++
		case token.Close:
			depth--
			if depth == 0 {
				return nil
			}
		case token.EOF:
			return &InvalidEventError{Element: start.QName(), Event: "end of input"}
		}
	}
}

// loop drives a record reader: it calls child for every element opened
// directly inside start and returns at start's close. Text and comments
// between children are ignored.
func (r *Reader) loop(start token.Event, child func(ev token.Event) error) error {
	for {
		ev, err := r.next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case token.Open:
			if err := child(ev); err != nil {
				return err
			}
		case token.Close:
			if ev.Name == start.Name {
				return nil
			}
			return &InvalidEventError{Element: start.QName(), Event: "close of <" + ev.QName() + ">"}
		case token.EOF:
			return &InvalidEventError{Element: start.QName(), Event: "end of input"}
		}
	}
}

// field returns the name used to match scalar fields. Prefixed children
// (gx:altitudeMode) never match the plain KML field of the same local name.
func field(ev token.Event) string {
	return ev.QName()
}

// takeAttr removes key from attrs and returns its value.
func takeAttr(attrs map[string]string, key string) (string, bool) {
	v, ok := attrs[key]
	if ok {
		delete(attrs, key)
	}
	return v, ok
}

func requireName(ev token.Event) (string, error) {
	name, ok := takeAttr(ev.Attrs, "name")
	if !ok {
		return "", errors.Wrapf(ErrInvalidInput, "%s: missing required name attribute", ev.Name)
	}
	return name, nil
}

func lossyString(s string) string {
	s = strings.TrimSpace(s)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	return s
}

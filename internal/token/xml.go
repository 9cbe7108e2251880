package token

import (
	"encoding/xml"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html/charset"
)

// Options configures an XMLSource.
type Options struct {
	// Strict enables encoding/xml strict mode. When false, HTML entities and
	// unquoted attributes are tolerated.
	Strict bool

	// DecodeCharset decodes documents whose XML declaration names a
	// non-UTF-8 encoding (ISO-8859-1, windows-1252, ...).
	DecodeCharset bool
}

// DefaultOptions returns options with strict parsing and charset decoding.
func DefaultOptions() Options {
	return Options{
		Strict:        true,
		DecodeCharset: true,
	}
}

// XMLSource adapts an encoding/xml Decoder to Source.
//
// Raw tokens are used so namespace prefixes survive untouched; element
// nesting is checked here instead of by the decoder.
type XMLSource struct {
	dec   *xml.Decoder
	stack []string
	done  bool
}

// NewXMLSource returns a Source reading XML from r.
func NewXMLSource(r io.Reader, opts Options) *XMLSource {
	dec := xml.NewDecoder(r)
	dec.Strict = opts.Strict
	if !opts.Strict {
		dec.Entity = xml.HTMLEntity
	}
	if opts.DecodeCharset {
		dec.CharsetReader = charset.NewReaderLabel
	}
	return &XMLSource{dec: dec}
}

// Offset returns the input byte offset of the decoder, for error messages.
func (s *XMLSource) Offset() int64 {
	return s.dec.InputOffset()
}

// Next implements Source.
func (s *XMLSource) Next() (Event, error) {
	if s.done {
		return Event{Kind: EOF}, nil
	}

	tok, err := s.dec.RawToken()
	if err == io.EOF {
		if len(s.stack) > 0 {
			return Event{}, errors.Newf("unexpected end of input inside <%s>", s.stack[len(s.stack)-1])
		}
		s.done = true
		return Event{Kind: EOF}, nil
	}
	if err != nil {
		return Event{}, err
	}

	switch t := tok.(type) {
	case xml.StartElement:
		ev := Event{
			Kind:   Open,
			Prefix: t.Name.Space,
			Name:   t.Name.Local,
			Attrs:  make(map[string]string, len(t.Attr)),
		}
		for _, a := range t.Attr {
			key := a.Name.Local
			if a.Name.Space != "" {
				key = a.Name.Space + ":" + key
			}
			ev.Attrs[key] = a.Value
		}
		s.stack = append(s.stack, ev.QName())
		return ev, nil

	case xml.EndElement:
		ev := Event{Kind: Close, Prefix: t.Name.Space, Name: t.Name.Local}
		if len(s.stack) == 0 {
			return Event{}, errors.Newf("unexpected </%s> at offset %d", ev.QName(), s.dec.InputOffset())
		}
		if top := s.stack[len(s.stack)-1]; top != ev.QName() {
			return Event{}, errors.Newf("element <%s> closed by </%s> at offset %d", top, ev.QName(), s.dec.InputOffset())
		}
		s.stack = s.stack[:len(s.stack)-1]
		return ev, nil

	case xml.CharData:
		return Event{Kind: Text, Data: copyBytes(t)}, nil

	case xml.Comment:
		return Event{Kind: Comment, Data: copyBytes(t)}, nil

	case xml.ProcInst:
		return Event{Kind: ProcInst, Name: t.Target, Data: copyBytes(t.Inst)}, nil

	case xml.Directive:
		return Event{Kind: Directive, Data: copyBytes(t)}, nil
	}

	return Event{}, errors.Newf("unsupported token %T", tok)
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

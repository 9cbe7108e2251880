// Package token turns raw XML bytes into the flat event stream consumed by the
// KML reader.
//
// The reader never sees encoding/xml types directly. It pulls Events from a
// Source, which keeps the recursive-descent parser independent of the
// tokenizer and lets tests feed hand-built event sequences.
package token

import "fmt"

// Kind identifies the type of an Event.
type Kind int

const (
	// Open is an element start tag. Empty elements (<a/>) produce an Open
	// followed by a Close.
	Open Kind = iota
	// Close is an element end tag.
	Close
	// Text is character data. CDATA sections are reported as Text as well.
	Text
	// Comment is an XML comment.
	Comment
	// ProcInst is a processing instruction such as the XML declaration.
	ProcInst
	// Directive is a <!...> directive such as a DOCTYPE.
	Directive
	// EOF marks the end of input. A Source keeps returning EOF once reached.
	EOF
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case ProcInst:
		return "procinst"
	case Directive:
		return "directive"
	case EOF:
		return "eof"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single item of the token stream.
type Event struct {
	Kind Kind

	// Prefix and Name hold the namespace prefix and local name of Open and
	// Close events. Dispatch is always on Name.
	Prefix string
	Name   string

	// Attrs holds the attributes of an Open event keyed by their qualified
	// name ("id", "xmlns:gx"). It is never nil for Open events.
	Attrs map[string]string

	// Data holds the payload of Text, Comment, ProcInst and Directive events.
	// It is owned by the event and stays valid after the next call to Next.
	Data []byte
}

// QName returns the qualified element name, "prefix:name" or just "name".
func (e Event) QName() string {
	if e.Prefix == "" {
		return e.Name
	}
	return e.Prefix + ":" + e.Name
}

// IsCloseOf reports whether e closes an element opened with the given name.
func (e Event) IsCloseOf(name string) bool {
	return e.Kind == Close && e.Name == name
}

// Source yields events in document order.
//
// Implementations hold cursor state and are not safe for concurrent use.
type Source interface {
	// Next returns the next event. Once the input is exhausted it returns an
	// EOF event and a nil error. Any tokenizer failure is returned as an error.
	Next() (Event, error)
}

// SliceSource replays a fixed sequence of events. It is mostly useful in tests.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource returns a Source that yields events and then EOF.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next implements Source.
func (s *SliceSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{Kind: EOF}, nil
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

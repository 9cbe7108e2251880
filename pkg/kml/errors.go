package kml

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoElements is returned when the input holds no elements at all.
	ErrNoElements = errors.New("no elements found")

	// ErrInvalidInput marks input that is well-formed XML but structurally
	// unusable, such as extended data without a name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoKMLEntry is returned when a KMZ archive has no .kml entry.
	ErrNoKMLEntry = errors.Mark(errors.New("archive contains no .kml entry"), ErrInvalidInput)
)

// MalformedError indicates the tokenizer rejected the input
type MalformedError struct {
	Offset int64
	Err    error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed XML near offset %d: %v", e.Offset, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// InvalidEventError indicates an event of the wrong kind where a specific one
// was required
type InvalidEventError struct {
	Element string // element being parsed
	Event   string // what was found instead
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("unexpected %s inside <%s>", e.Event, e.Element)
}

// InvalidEnumError indicates a literal outside an enumerated grammar
type InvalidEnumError struct {
	Type  string // AltitudeMode, ColorMode, ...
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s for %s: %q", e.Type, e.Field, e.Value)
}

// InvalidBoolError indicates a boolean flag that is not 1/0 (or true/false
// where allowed)
type InvalidBoolError struct {
	Field string
	Value string
}

func (e *InvalidBoolError) Error() string {
	return fmt.Sprintf("invalid boolean for %s: %q", e.Field, e.Value)
}

// NumParseError indicates a number that failed to parse
type NumParseError struct {
	Field string
	Value string
	Err   error
}

func (e *NumParseError) Error() string {
	return fmt.Sprintf("cannot parse %s as a number: %q", e.Field, e.Value)
}

func (e *NumParseError) Unwrap() error { return e.Err }

// CoordParseError indicates a coordinate tuple with the wrong shape
type CoordParseError struct {
	Value  string
	Reason string
}

func (e *CoordParseError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %s", e.Value, e.Reason)
}

// InvalidGeometryError indicates geometry missing required parts
type InvalidGeometryError struct {
	Type   string
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("invalid geometry (%s): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// InvalidVersionError indicates a KML namespace with an unknown version
type InvalidVersionError struct {
	Namespace string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported KML version in namespace %q", e.Namespace)
}

// InvalidCoordinateError indicates a coordinate outside geographic bounds
type InvalidCoordinateError struct {
	Lat, Lon float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

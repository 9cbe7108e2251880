package kml

import (
	"fmt"
	"strconv"
	"strings"
)

// AltitudeMode specifies how altitude components of coordinates are
// interpreted.
type AltitudeMode int

const (
	ClampToGround AltitudeMode = iota // default
	RelativeToGround
	Absolute
)

var altitudeModeNames = []string{"clampToGround", "relativeToGround", "absolute"}

func (m AltitudeMode) String() string { return enumName(altitudeModeNames, int(m), "AltitudeMode") }

// ParseAltitudeMode parses the KML literal for an altitude mode.
func ParseAltitudeMode(field, s string) (AltitudeMode, error) {
	i, err := parseEnum(altitudeModeNames, "AltitudeMode", field, s)
	return AltitudeMode(i), err
}

// ColorMode specifies whether a color is used as-is or randomized.
type ColorMode int

const (
	ColorModeNormal ColorMode = iota // default
	ColorModeRandom
)

var colorModeNames = []string{"normal", "random"}

func (m ColorMode) String() string { return enumName(colorModeNames, int(m), "ColorMode") }

// ParseColorMode parses the KML literal for a color mode.
func ParseColorMode(field, s string) (ColorMode, error) {
	i, err := parseEnum(colorModeNames, "ColorMode", field, s)
	return ColorMode(i), err
}

// RefreshMode specifies a time-based refresh policy for a Link.
type RefreshMode int

const (
	RefreshOnChange RefreshMode = iota // default
	RefreshOnInterval
	RefreshOnExpire
)

var refreshModeNames = []string{"onChange", "onInterval", "onExpire"}

func (m RefreshMode) String() string { return enumName(refreshModeNames, int(m), "RefreshMode") }

// ParseRefreshMode parses the KML literal for a refresh mode.
func ParseRefreshMode(field, s string) (RefreshMode, error) {
	i, err := parseEnum(refreshModeNames, "RefreshMode", field, s)
	return RefreshMode(i), err
}

// ViewRefreshMode specifies how a Link is refreshed when the camera changes.
type ViewRefreshMode int

const (
	ViewRefreshNever ViewRefreshMode = iota // default
	ViewRefreshOnRequest
	ViewRefreshOnStop
	ViewRefreshOnRegion
)

var viewRefreshModeNames = []string{"never", "onRequest", "onStop", "onRegion"}

func (m ViewRefreshMode) String() string {
	return enumName(viewRefreshModeNames, int(m), "ViewRefreshMode")
}

// ParseViewRefreshMode parses the KML literal for a view refresh mode.
func ParseViewRefreshMode(field, s string) (ViewRefreshMode, error) {
	i, err := parseEnum(viewRefreshModeNames, "ViewRefreshMode", field, s)
	return ViewRefreshMode(i), err
}

// Units qualifies the x and y values of a hotSpot.
type Units int

const (
	UnitsFraction Units = iota // default
	UnitsPixels
	UnitsInsetPixels
)

var unitsNames = []string{"fraction", "pixels", "insetPixels"}

func (u Units) String() string { return enumName(unitsNames, int(u), "Units") }

// ParseUnits parses the KML literal for hotSpot units.
func ParseUnits(field, s string) (Units, error) {
	i, err := parseEnum(unitsNames, "Units", field, s)
	return Units(i), err
}

// ListItemType specifies how a Folder and its children display in a list view.
type ListItemType int

const (
	ListItemCheck ListItemType = iota // default
	ListItemCheckOffOnly
	ListItemCheckHideChildren
	ListItemRadioFolder
)

var listItemTypeNames = []string{"check", "checkOffOnly", "checkHideChildren", "radioFolder"}

func (t ListItemType) String() string { return enumName(listItemTypeNames, int(t), "ListItemType") }

// ParseListItemType parses the KML literal for a list item type.
func ParseListItemType(field, s string) (ListItemType, error) {
	i, err := parseEnum(listItemTypeNames, "ListItemType", field, s)
	return ListItemType(i), err
}

func enumName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func parseEnum(names []string, typ, field, s string) (int, error) {
	for i, name := range names {
		if s == name {
			return i, nil
		}
	}
	return 0, &InvalidEnumError{Type: typ, Field: field, Value: s}
}

// parseBool accepts "1" and "0", plus "true" and "false" when words is set.
func parseBool(field, s string, words bool) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	if words {
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, &InvalidBoolError{Field: field, Value: s}
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &NumParseError{Field: field, Value: s, Err: err}
	}
	return v, nil
}

func parseUint32(field, s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, &NumParseError{Field: field, Value: s, Err: err}
	}
	return uint32(v), nil
}

// Version identifies the KML schema version of a document root.
type Version int

const (
	VersionUnknown Version = iota
	V20
	V21
	V22
)

const (
	namespaceOGC    = "http://www.opengis.net/kml/"
	namespaceGoogle = "http://earth.google.com/kml/"
)

func (v Version) String() string {
	switch v {
	case V20:
		return "2.0"
	case V21:
		return "2.1"
	case V22:
		return "2.2"
	default:
		return "unknown"
	}
}

// Namespace returns the canonical namespace URI for the version, or "" when
// the version is unknown.
func (v Version) Namespace() string {
	switch v {
	case V20, V21:
		return namespaceGoogle + v.String()
	case V22:
		return namespaceOGC + v.String()
	default:
		return ""
	}
}

// VersionFromNamespace maps a namespace URI to a Version.
//
// A URI under a known KML namespace prefix with an unrecognized version
// suffix is an error. Any other URI yields VersionUnknown and ok=false.
func VersionFromNamespace(ns string) (v Version, ok bool, err error) {
	var suffix string
	switch {
	case strings.HasPrefix(ns, namespaceOGC):
		suffix = strings.TrimPrefix(ns, namespaceOGC)
		if suffix == "2.2" {
			return V22, true, nil
		}
	case strings.HasPrefix(ns, namespaceGoogle):
		suffix = strings.TrimPrefix(ns, namespaceGoogle)
		switch suffix {
		case "2.0":
			return V20, true, nil
		case "2.1":
			return V21, true, nil
		case "2.2":
			return V22, true, nil
		}
	default:
		return VersionUnknown, false, nil
	}
	return VersionUnknown, false, &InvalidVersionError{Namespace: ns}
}

func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

package kml

// DefaultColor is the color used when a style omits one: opaque white in
// KML's aabbggrr notation.
const DefaultColor = "ffffffff"

// Style groups sub-styles under an id that features refer to via styleUrl.
type Style struct {
	ID      string
	Balloon *BalloonStyle
	Icon    *IconStyle
	Label   *LabelStyle
	Line    *LineStyle
	Poly    *PolyStyle
	List    *ListStyle
	Attrs   map[string]string
}

// StyleMap maps style states (normal, highlight) to styles.
type StyleMap struct {
	ID    string
	Pairs []Pair
	Attrs map[string]string
}

// Pair is a single StyleMap entry.
type Pair struct {
	Key      string
	StyleURL string
	Attrs    map[string]string
}

// BalloonStyle controls the description balloon.
type BalloonStyle struct {
	ID        string
	BgColor   *string
	TextColor string
	Text      *string
	Display   bool // false for displayMode "hide"
	Attrs     map[string]string
}

// NewBalloonStyle returns a BalloonStyle with KML defaults.
func NewBalloonStyle() *BalloonStyle {
	return &BalloonStyle{TextColor: DefaultColor, Display: true}
}

// IconStyle controls how point icons are drawn.
type IconStyle struct {
	ID        string
	Scale     float64
	Heading   float64
	HotSpot   *Vec2
	Icon      *Icon
	Color     string
	ColorMode ColorMode
	Attrs     map[string]string
}

// NewIconStyle returns an IconStyle with KML defaults.
func NewIconStyle() *IconStyle {
	return &IconStyle{Scale: 1, Color: DefaultColor}
}

// Vec2 is an image anchor such as the IconStyle hotSpot.
type Vec2 struct {
	X      float64
	Y      float64
	XUnits Units
	YUnits Units
}

// LabelStyle controls how feature names are drawn.
type LabelStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Scale     float64
	Attrs     map[string]string
}

// NewLabelStyle returns a LabelStyle with KML defaults.
func NewLabelStyle() *LabelStyle {
	return &LabelStyle{Color: DefaultColor, Scale: 1}
}

// LineStyle controls how lines and outlines are drawn.
type LineStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Width     float64
	Attrs     map[string]string
}

// NewLineStyle returns a LineStyle with KML defaults.
func NewLineStyle() *LineStyle {
	return &LineStyle{Color: DefaultColor, Width: 1}
}

// PolyStyle controls how polygons are filled and outlined.
type PolyStyle struct {
	ID        string
	Color     string
	ColorMode ColorMode
	Fill      bool
	Outline   bool
	Attrs     map[string]string
}

// NewPolyStyle returns a PolyStyle with KML defaults.
func NewPolyStyle() *PolyStyle {
	return &PolyStyle{Color: DefaultColor, Fill: true, Outline: true}
}

// ListStyle controls how a feature is shown in a list view.
type ListStyle struct {
	ID              string
	BgColor         string
	MaxSnippetLines uint32
	ListItemType    ListItemType
	Attrs           map[string]string
}

// NewListStyle returns a ListStyle with KML defaults.
func NewListStyle() *ListStyle {
	return &ListStyle{BgColor: DefaultColor, MaxSnippetLines: 2}
}

func (*Style) Tag() string        { return "Style" }
func (*StyleMap) Tag() string     { return "StyleMap" }
func (*Pair) Tag() string         { return "Pair" }
func (*BalloonStyle) Tag() string { return "BalloonStyle" }
func (*IconStyle) Tag() string    { return "IconStyle" }
func (*LabelStyle) Tag() string   { return "LabelStyle" }
func (*LineStyle) Tag() string    { return "LineStyle" }
func (*PolyStyle) Tag() string    { return "PolyStyle" }
func (*ListStyle) Tag() string    { return "ListStyle" }

func (*Style) kml()        {}
func (*StyleMap) kml()     {}
func (*Pair) kml()         {}
func (*BalloonStyle) kml() {}
func (*IconStyle) kml()    {}
func (*LabelStyle) kml()   {}
func (*LineStyle) kml()    {}
func (*PolyStyle) kml()    {}
func (*ListStyle) kml()    {}

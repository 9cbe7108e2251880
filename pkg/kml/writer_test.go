package kml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, k Kml) string {
	t.Helper()
	b, err := Marshal(k)
	require.NoError(t, err)
	return string(b)
}

// roundTrip writes k, reads the output back and checks the trees match.
func roundTrip(t *testing.T, k Kml) {
	t.Helper()
	out := mustMarshal(t, k)
	got, err := ReadString(out)
	require.NoError(t, err, "re-reading:\n%s", out)
	assertTree(t, k, got)
}

// TestWritePoint tests the compact form of a point
func TestWritePoint(t *testing.T) {
	out := mustMarshal(t, &Point{Coord: NewCoordZ[float64](1.0, 1.0, 1.0)})
	assert.Contains(t, out, "<Point>")
	assert.Contains(t, out, "<coordinates>1,1,1</coordinates>")
	assert.Contains(t, out, "<extrude>0</extrude>")
	assert.Contains(t, out, "<altitudeMode>clampToGround</altitudeMode>")
	assert.True(t, strings.HasSuffix(out, "</Point>"), out)
}

// TestWriteAttributeOrder tests identity first, then sorted attributes
func TestWriteAttributeOrder(t *testing.T) {
	out := mustMarshal(t, &Style{ID: "s1", Attrs: map[string]string{"b": "2", "a": "1"}})
	assert.Contains(t, out, `<Style id="s1" a="1" b="2"`)

	out = mustMarshal(t, &SimpleData{Name: "n", Value: "v", Attrs: map[string]string{"z": "1", "a": "2"}})
	assert.Contains(t, out, `<SimpleData name="n" a="2" z="1">v</SimpleData>`)

	out = mustMarshal(t, &Folder{Attrs: map[string]string{"id": "f", "xmlns:gx": "http://www.google.com/kml/ext/2.2"}})
	assert.Contains(t, out, `<Folder id="f" xmlns:gx="http://www.google.com/kml/ext/2.2"`)
}

// TestWriteEscaping tests that text and attributes are escaped
func TestWriteEscaping(t *testing.T) {
	pm := &Placemark{
		Name:        ptr("A & B"),
		Description: ptr("<b>bold</b>"),
		Attrs:       map[string]string{"id": `"q"`},
	}
	out := mustMarshal(t, pm)
	assert.NotContains(t, out, "<b>bold")
	assert.NotContains(t, out, "A & B")
	roundTrip(t, pm)
}

// TestWriteRootNamespace tests the namespace derived from the version
func TestWriteRootNamespace(t *testing.T) {
	out := mustMarshal(t, &Root{Version: V22, Elements: []Kml{&Document{}}})
	assert.Contains(t, out, `<kml xmlns="http://www.opengis.net/kml/2.2">`)

	roundTrip(t, &Root{
		Version:  V22,
		Attrs:    map[string]string{"xmlns:gx": "http://www.google.com/kml/ext/2.2"},
		Elements: []Kml{&Document{Attrs: map[string]string{"id": "d"}}},
	})
}

// TestWritePolygonInnerRings tests one innerBoundaryIs per inner ring
func TestWritePolygonInnerRings(t *testing.T) {
	ring := func(x float64) LinearRing {
		return LinearRing{Coords: []Coord[float64]{
			NewCoord(x, x), NewCoord(x+1, x), NewCoord(x+1, x+1), NewCoord(x, x),
		}}
	}
	poly := &Polygon{Outer: ring(0), Inner: []LinearRing{ring(2), ring(5)}}

	out := mustMarshal(t, poly)
	assert.Equal(t, 1, strings.Count(out, "<outerBoundaryIs>"))
	assert.Equal(t, 2, strings.Count(out, "<innerBoundaryIs>"))
	roundTrip(t, poly)
}

// TestWriteDeclaration tests the XML declaration option
func TestWriteDeclaration(t *testing.T) {
	b, err := MarshalIndent(&Document{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("<?xml")), string(b))

	b, err = Marshal(&Document{})
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(b, []byte("<?xml")), string(b))
}

// TestWriteRoundTrip tests that written trees read back unchanged
func TestWriteRoundTrip(t *testing.T) {
	icon := NewIcon()
	icon.Href = ptr("icon.png")
	link := NewLink()
	link.ID = "l1"
	link.Href = ptr("http://example.com/feed.kml?a=1&b=2")
	link.RefreshMode = RefreshOnExpire
	link.ViewFormat = ptr("BBOX=[bboxWest],[bboxSouth]")
	line := NewLineStyle()
	line.Width = 2.5
	line.ColorMode = ColorModeRandom
	balloon := NewBalloonStyle()
	balloon.Display = false
	balloon.Text = ptr("$[description]")

	tests := []struct {
		name string
		k    Kml
	}{
		{"point", &Point{Coord: NewCoord[float64](-122.0822035425683, 37.42228990140251), Extrude: true, AltitudeMode: Absolute}},
		{"line", &LineString{Coords: []Coord[float64]{NewCoordZ[float64](0, 0, 1), NewCoordZ[float64](1.5, -2.25, 0)}, Tessellate: true}},
		{"ring", &LinearRing{Coords: []Coord[float64]{NewCoord[float64](0, 0), NewCoord[float64](1, 0), NewCoord[float64](1, 1), NewCoord[float64](0, 0)}, Attrs: map[string]string{"id": "r"}}},
		{"multi geometry", &MultiGeometry{Geometries: []Geometry{
			&Point{Coord: NewCoord[float64](1, 2)},
			&MultiGeometry{Geometries: []Geometry{&LineString{Coords: []Coord[float64]{NewCoord[float64](0, 0), NewCoord[float64](1, 1)}}}},
			&Element{Name: "Model", Children: []*Element{{Name: "Link", Children: []*Element{{Name: "href", Content: ptr("house.dae")}}}}},
		}}},
		{"placemark", &Placemark{
			Name:     ptr("p"),
			StyleURL: ptr("#s"),
			Geometry: &Point{Coord: NewCoord[float64](3, 4)},
			Children: []*Element{{Name: "visibility", Content: ptr("0")}},
		}},
		{"placemark with track", &Placemark{Geometry: &Element{Prefix: "gx", Name: "Track", Children: []*Element{
			{Name: "when", Content: ptr("2010-05-28T02:02:09Z")},
			{Prefix: "gx", Name: "coord", Content: ptr("-122.207881 37.371915 156.000000")},
		}}}},
		{"style", &Style{
			ID:      "s",
			Icon:    &IconStyle{Scale: 1.5, Color: "ff0000ff", Icon: icon, HotSpot: &Vec2{X: 20, Y: 2, XUnits: UnitsPixels, YUnits: UnitsInsetPixels}},
			Label:   NewLabelStyle(),
			Line:    line,
			Poly:    &PolyStyle{Color: "7f00ff00", Fill: true},
			Balloon: balloon,
			List:    &ListStyle{BgColor: "00ffffff", MaxSnippetLines: 5, ListItemType: ListItemCheckHideChildren},
		}},
		{"style map", &StyleMap{ID: "m", Pairs: []Pair{{Key: "normal", StyleURL: "#a"}, {Key: "highlight", StyleURL: "#b"}}}},
		{"link", link},
		{"icon", icon},
		{"schema data", &SchemaData{
			Attrs:  map[string]string{"schemaUrl": "#schema"},
			Data:   []SimpleData{{Name: "a", Value: "1"}, {Name: "b", Value: "x < y"}},
			Arrays: []SimpleArrayData{{Name: "heartrate", Values: []string{"181", "182"}}},
		}},
		{"model parts", &Document{Elements: []Kml{
			&Location{Longitude: 1, Latitude: 2, Altitude: 3},
			&Orientation{Roll: 1, Tilt: 2, Heading: 3},
			&Scale{X: 1, Y: 2, Z: 3},
			&ResourceMap{Aliases: []Alias{{TargetHref: ptr("a.jpg"), SourceHref: ptr("b.jpg")}}},
		}}},
		{"nested containers", &Root{Elements: []Kml{
			&Folder{Elements: []Kml{&Folder{Elements: []Kml{&Placemark{Name: ptr("deep")}}}}},
			&Element{Name: "NetworkLinkControl", Attrs: map[string]string{"x": "1"}, Content: ptr("text")},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.k)
		})
	}
}

// TestWriteIndentRoundTrip tests that indentation does not change the tree
func TestWriteIndentRoundTrip(t *testing.T) {
	doc := &Root{Version: V22, Elements: []Kml{&Document{Elements: []Kml{
		&Style{ID: "s", Line: NewLineStyle()},
		&Placemark{Name: ptr("n"), Geometry: &LineString{Coords: []Coord[float64]{NewCoord[float64](0, 0), NewCoord[float64](1, 1)}}},
	}}}}

	b, err := MarshalIndent(doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n")

	got, err := ReadBytes(b)
	require.NoError(t, err)
	assertTree(t, doc, got)
}

// TestWriteReadWrite tests that a parsed document writes the same twice
func TestWriteReadWrite(t *testing.T) {
	input := `<kml xmlns="http://www.opengis.net/kml/2.2"><Placemark><name>x</name><Point><coordinates>1,2,3</coordinates></Point></Placemark></kml>`
	first := mustMarshal(t, mustRead(t, input))
	second := mustMarshal(t, mustRead(t, first))
	assert.Equal(t, first, second)
}

// TestWriteReadExtensions tests that extension markup, extended data and
// tiny coordinates survive a write and re-read
func TestWriteReadExtensions(t *testing.T) {
	doc, err := ReadString(`<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2">
<Document>
	<Placemark>
		<name>track</name>
		<ExtendedData><Data name="speed"><value>12</value></Data></ExtendedData>
		<gx:Track><when>2010-05-28T02:02:09Z</when><gx:coord>-122.207881 37.371915 156.0</gx:coord></gx:Track>
	</Placemark>
	<Placemark><Point><coordinates>0.0000001,1e-7</coordinates></Point></Placemark>
	<SchemaData schemaUrl="#s">
		<SimpleData name="a">1</SimpleData>
		<SimpleArrayData name="b"><value>x</value><value>y</value></SimpleArrayData>
	</SchemaData>
</Document>
</kml>`)
	require.NoError(t, err)

	out := mustMarshal(t, doc)
	got, err := ReadString(out)
	require.NoError(t, err, "re-reading:\n%s", out)
	assertTree(t, doc, got)
	assert.Contains(t, out, "<gx:Track>")
	assert.Contains(t, out, `<SimpleData name="a">1</SimpleData>`)
}

package flatten

import (
	"testing"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func mustRead(t *testing.T, s string) kml.Kml {
	t.Helper()
	k, err := kml.ReadString(s)
	require.NoError(t, err)
	return k
}

// TestFlattenFolder tests flattening of a mixed folder
func TestFlattenFolder(t *testing.T) {
	doc := mustRead(t, `<Folder>
		<Point><coordinates>1,1,1</coordinates><altitudeMode>relativeToGround</altitudeMode></Point>
		<LineString><coordinates>1,1 2,1 3,1</coordinates></LineString>
		<Style id="ignored"/>
	</Folder>`)

	geoms, err := Flatten(doc)
	require.NoError(t, err)
	require.Len(t, geoms, 2)

	pt, ok := geoms[0].(*geom.Point)
	require.True(t, ok, "expected *geom.Point, got %T", geoms[0])
	assert.Equal(t, geom.XYZ, pt.Layout())
	assert.Equal(t, []float64{1, 1, 1}, pt.FlatCoords())

	ls, ok := geoms[1].(*geom.LineString)
	require.True(t, ok)
	assert.Equal(t, geom.XY, ls.Layout())
	assert.Equal(t, []float64{1, 1, 2, 1, 3, 1}, ls.FlatCoords())
}

// TestFlattenMixedAltitude tests that a missing altitude drops the Z layout
func TestFlattenMixedAltitude(t *testing.T) {
	doc := mustRead(t, `<LineString><coordinates>0,0,5 1,1</coordinates></LineString>`)
	geoms, err := Flatten(doc)
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.Equal(t, geom.XY, geoms[0].Layout())
	assert.Equal(t, []float64{0, 0, 1, 1}, geoms[0].FlatCoords())
}

// TestFlattenPolygon tests ring order and ends
func TestFlattenPolygon(t *testing.T) {
	doc := mustRead(t, `<Placemark><Polygon>
		<outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,4 0,4 0,0</coordinates></LinearRing></outerBoundaryIs>
		<innerBoundaryIs><LinearRing><coordinates>1,1 2,1 2,2 1,1</coordinates></LinearRing></innerBoundaryIs>
	</Polygon></Placemark>`)

	geoms, err := Flatten(doc)
	require.NoError(t, err)
	require.Len(t, geoms, 1)

	poly, ok := geoms[0].(*geom.Polygon)
	require.True(t, ok)
	assert.Equal(t, 2, poly.NumLinearRings())
	assert.Equal(t, []int{10, 18}, poly.Ends())
	assert.Equal(t, 5, poly.LinearRing(0).NumCoords())
	assert.Equal(t, 4, poly.LinearRing(1).NumCoords())
}

// TestFlattenLinearRing tests that a bare ring becomes a line string
func TestFlattenLinearRing(t *testing.T) {
	geoms, err := Flatten(mustRead(t, `<LinearRing><coordinates>0,0 1,0 1,1 0,0</coordinates></LinearRing>`))
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.IsType(t, &geom.LineString{}, geoms[0])
}

// TestFlattenMultiGeometry tests splicing at top level and grouping in placemarks
func TestFlattenMultiGeometry(t *testing.T) {
	multi := `<MultiGeometry>
		<Point><coordinates>0,0</coordinates></Point>
		<Point><coordinates>1,1</coordinates></Point>
	</MultiGeometry>`

	geoms, err := Flatten(mustRead(t, multi))
	require.NoError(t, err)
	assert.Len(t, geoms, 2)

	geoms, err = Flatten(mustRead(t, "<Placemark>"+multi+"</Placemark>"))
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	gc, ok := geoms[0].(*geom.GeometryCollection)
	require.True(t, ok)
	assert.Equal(t, 2, gc.NumGeoms())
}

// TestFlattenPlacemarks tests placemarks with and without geometry
func TestFlattenPlacemarks(t *testing.T) {
	doc := mustRead(t, `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
		<Placemark><name>empty</name></Placemark>
		<Folder><Placemark><Point><coordinates>3,4</coordinates></Point></Placemark></Folder>
	</Document></kml>`)

	geoms, err := Flatten(doc)
	require.NoError(t, err)
	require.Len(t, geoms, 1)
	assert.Equal(t, []float64{3, 4}, geoms[0].FlatCoords())
}

// TestFlattenUnsupported tests the placeholder for unmodeled geometry
func TestFlattenUnsupported(t *testing.T) {
	doc := mustRead(t, `<Folder>
		<Placemark><gx:Track><when>2010-05-28T02:02:09Z</when></gx:Track></Placemark>
		<Placemark><Point><coordinates>1,2</coordinates></Point></Placemark>
	</Folder>`)

	_, err := Flatten(doc)
	var convErr *CannotConvertError
	require.True(t, errors.As(err, &convErr), "got %v", err)
	assert.Equal(t, "gx:Track", convErr.Kind)

	geoms, err := FlattenWithOptions(doc, Options{SkipUnsupported: true})
	require.NoError(t, err)
	assert.Len(t, geoms, 1)

	_, err = Geometry(&kml.MultiGeometry{Geometries: []kml.Geometry{&kml.Element{Name: "Model"}}}, DefaultOptions())
	assert.True(t, errors.As(err, &convErr))
}

// TestFlattenNoGeometry tests documents that contribute nothing
func TestFlattenNoGeometry(t *testing.T) {
	geoms, err := Flatten(mustRead(t, `<Document><Style id="a"/><Custom/></Document>`))
	require.NoError(t, err)
	assert.Empty(t, geoms)
}

// TestCollection tests the collection shortcut
func TestCollection(t *testing.T) {
	doc := mustRead(t, `<Folder>
		<Point><coordinates>1,1</coordinates></Point>
		<LineString><coordinates>1,1 2,1 3,1</coordinates></LineString>
	</Folder>`)

	gc, err := Collection(doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, gc.NumGeoms())
	assert.IsType(t, &geom.Point{}, gc.Geom(0))
	assert.IsType(t, &geom.LineString{}, gc.Geom(1))
}

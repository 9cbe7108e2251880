package kml

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCoord tests parsing of single coordinate tuples
func TestParseCoord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Coord[float64]
	}{
		{"xy", "1,2", NewCoord(1.0, 2.0)},
		{"xyz", "1,1,1", NewCoordZ(1.0, 1.0, 1.0)},
		{"negative", "-122.0822035425683,37.42228990140251,0", NewCoordZ(-122.0822035425683, 37.42228990140251, 0)},
		{"spaces around components", " 1 , 2 ", NewCoord(1.0, 2.0)},
		{"exponent", "1e2,2", NewCoord(100.0, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoord[float64](tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseCoordErrors tests rejected coordinate tuples
func TestParseCoordErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string // empty for shape errors
	}{
		{"single value", "1", ""},
		{"four values", "1,2,3,4", ""},
		{"bad x", "a,2", "x"},
		{"bad y", "1,b", "y"},
		{"bad z", "1,2,c", "z"},
		{"empty y", "1,", "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCoord[float64](tt.input)
			require.Error(t, err)

			if tt.wantField == "" {
				var shape *CoordParseError
				assert.True(t, errors.As(err, &shape), "expected CoordParseError, got %v", err)
				return
			}
			var num *NumParseError
			require.True(t, errors.As(err, &num), "expected NumParseError, got %v", err)
			assert.Equal(t, tt.wantField, num.Field)
		})
	}
}

// TestParseCoords tests whitespace separated coordinate lists
func TestParseCoords(t *testing.T) {
	coords, err := ParseCoords[float64]("\n\t-1,2,0 -1.5,3,0\n\n   -1.5,2,0\t-1,2,0  ")
	require.NoError(t, err)
	require.Len(t, coords, 4)
	assert.Equal(t, -1.5, coords[1].X)
	assert.Equal(t, 3.0, coords[1].Y)

	empty, err := ParseCoords[float64]("   ")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// TestCoordFormatRoundTrip tests that formatting then parsing is lossless
func TestCoordFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"1,2",
		"1,1,1",
		"-122.0822035425683,37.42228990140251,0",
		"0.1,0.2,0.3",
		"179.99999999999997,-89.99999999999999",
		"123456789012,5e-7",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			c, err := ParseCoord[float64](input)
			require.NoError(t, err)

			again, err := ParseCoord[float64](FormatCoord(c))
			require.NoError(t, err)
			assert.Equal(t, c, again)
		})
	}
}

// TestFormatCoord tests plain decimal output
func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "1,1,1", FormatCoord(NewCoordZ(1.0, 1.0, 1.0)))
	assert.Equal(t, "0.0000005,100000000000000000000", FormatCoord(NewCoord(5e-7, 1e20)))
	assert.Equal(t, "1,2\n3,4,5", FormatCoords([]Coord[float64]{NewCoord(1.0, 2.0), NewCoordZ(3.0, 4.0, 5.0)}))
	assert.Equal(t, "", FormatCoords[float64](nil))
}

// TestCoordFloat32 tests the single precision instantiation
func TestCoordFloat32(t *testing.T) {
	c, err := ParseCoord[float32]("0.1,0.2,0.3")
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), c.X)
	assert.True(t, c.HasZ())
	assert.Equal(t, "0.1,0.2,0.3", FormatCoord(c))
}

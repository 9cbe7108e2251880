package index

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func placemark(name string, lon, lat float64) string {
	return fmt.Sprintf(`<Placemark><name>%s</name><Point><coordinates>%g,%g</coordinates></Point></Placemark>`, name, lon, lat)
}

// testFs returns a filesystem with a small tree of documents.
func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	write("/data/a.kml", placemark("alpha", 1, 1))
	write("/data/sub/b.KML", placemark("bravo", 2, 2))
	write("/data/sub/deeper/c.kml", "<Folder>"+placemark("charlie", 3, 3)+placemark("delta", 4, 4)+"</Folder>")
	write("/data/notes.txt", "not a document")

	var kmz bytes.Buffer
	require.NoError(t, kml.WriteKMZ(&kmz, &kml.Placemark{
		Name:     strPtr("echo"),
		Geometry: &kml.Point{Coord: kml.NewCoord(5.0, 5.0)},
	}, kml.DefaultWriteOptions()))
	write("/data/e.kmz", kmz.String())
	return fs
}

func strPtr(s string) *string { return &s }

// TestFindFiles tests the directory walk
func TestFindFiles(t *testing.T) {
	paths, err := FindFiles(testFs(t), "/data")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/data/a.kml",
		"/data/e.kmz",
		"/data/sub/b.KML",
		"/data/sub/deeper/c.kml",
	}, paths)
}

// TestLoadFiles tests serial and parallel loading keep input order
func TestLoadFiles(t *testing.T) {
	fs := testFs(t)
	paths := []string{"/data/sub/deeper/c.kml", "/data/a.kml", "/data/e.kmz", "/data/sub/b.KML"}

	for _, parallel := range []bool{false, true} {
		t.Run(fmt.Sprintf("parallel=%v", parallel), func(t *testing.T) {
			var mu sync.Mutex
			var calls []int
			opts := DefaultLoadOptions()
			opts.Fs = fs
			opts.Parallel = parallel
			opts.Workers = 2
			opts.Progress = func(loaded, total int) {
				mu.Lock()
				defer mu.Unlock()
				calls = append(calls, loaded)
				assert.Equal(t, len(paths), total)
			}

			files, errs := LoadFiles(paths, opts)
			assert.Empty(t, errs)
			require.Len(t, files, len(paths))
			for i, f := range files {
				assert.Equal(t, paths[i], f.Path)
				assert.NotNil(t, f.Doc)
				assert.Positive(t, f.Size)
			}
			assert.Len(t, calls, len(paths))
		})
	}
}

// TestLoadFilesErrors tests skipping and stopping on failures
func TestLoadFilesErrors(t *testing.T) {
	fs := testFs(t)
	require.NoError(t, afero.WriteFile(fs, "/data/bad.kml", []byte("<Placemark>"), 0o644))
	paths := []string{"/data/a.kml", "/data/bad.kml", "/data/missing.kml"}

	core, logs := observer.New(zap.WarnLevel)
	opts := DefaultLoadOptions()
	opts.Fs = fs
	opts.Logger = zap.New(core)

	files, errs := LoadFiles(paths, opts)
	require.Len(t, files, 1)
	assert.Equal(t, "/data/a.kml", files[0].Path)
	assert.Len(t, errs, 2)
	assert.Equal(t, 2, logs.FilterMessage("load failed").Len())

	opts.SkipErrors = false
	opts.Parallel = false
	files, errs = LoadFiles(paths, opts)
	assert.Nil(t, files)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "/data/bad.kml")
}

// TestLoadFilesEmpty tests an empty path list
func TestLoadFilesEmpty(t *testing.T) {
	files, errs := LoadFiles(nil, DefaultLoadOptions())
	assert.Empty(t, files)
	assert.Nil(t, errs)
}

// TestBuildFromDir tests indexing a directory tree
func TestBuildFromDir(t *testing.T) {
	fs := testFs(t)

	idx, errs, err := BuildFromDir(fs, "/data", DefaultLoadOptions())
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 5, idx.Count())

	hits := idx.Query(Bounds{MinLon: 2.5, MaxLon: 4.5, MinLat: 2.5, MaxLat: 4.5})
	require.Len(t, hits, 2)
	assert.Equal(t, "charlie", hits[0].Name)
	assert.Equal(t, "delta", hits[1].Name)
	assert.Equal(t, "/data/sub/deeper/c.kml", hits[0].Source)

	_, _, err = BuildFromDir(fs, "/data/sub/deeper/none", DefaultLoadOptions())
	assert.Error(t, err)

	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	_, _, err = BuildFromDir(fs, "/empty", DefaultLoadOptions())
	assert.Error(t, err)
}

// TestLoadFilesCache tests that unchanged files are served from the cache
// and changed files are parsed again
func TestLoadFilesCache(t *testing.T) {
	fs := testFs(t)
	paths := []string{"/data/a.kml", "/data/e.kmz", "/data/sub/b.KML"}

	opts := DefaultLoadOptions()
	opts.Fs = fs
	opts.Cache = NewDocumentCache(0)

	first, errs := LoadFiles(paths, opts)
	require.Empty(t, errs)
	require.Len(t, first, 3)
	assert.Equal(t, 3, opts.Cache.Stats().Misses)

	second, errs := LoadFiles(paths, opts)
	require.Empty(t, errs)
	require.Len(t, second, 3)
	stats := opts.Cache.Stats()
	assert.Equal(t, 3, stats.Hits)
	assert.Equal(t, 3, stats.Documents)
	for i := range first {
		assert.Same(t, first[i].Doc, second[i].Doc, first[i].Path)
	}

	require.NoError(t, afero.WriteFile(fs, "/data/a.kml", []byte(placemark("alpha-renamed", 1, 1)), 0o644))
	third, errs := LoadFiles(paths[:1], opts)
	require.Empty(t, errs)
	require.Len(t, third, 1)
	assert.Equal(t, "alpha-renamed", *kml.Placemarks(third[0].Doc)[0].Name)
	assert.Equal(t, 4, opts.Cache.Stats().Misses)
}

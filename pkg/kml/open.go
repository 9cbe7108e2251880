package kml

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// ReadString parses a KML document held in a string.
func ReadString(s string) (Kml, error) {
	return Read(strings.NewReader(s))
}

// ReadBytes parses a KML document held in memory.
func ReadBytes(b []byte) (Kml, error) {
	return Read(bytes.NewReader(b))
}

// Read parses a KML document from r with default options.
func Read(r io.Reader) (Kml, error) {
	return NewReader(r, DefaultReadOptions()).Read()
}

// ReadFile parses the KML file at path.
//
// Example:
//
//	doc, err := kml.ReadFile("trails.kml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, pm := range kml.Placemarks(doc) {
//	    fmt.Println(*pm.Name)
//	}
func ReadFile(path string) (Kml, error) {
	return ReadFileFS(afero.NewOsFs(), path, DefaultReadOptions())
}

// ReadFileFS parses the KML file at path on fs.
func ReadFileFS(fs afero.Fs, path string, opts ReadOptions) (Kml, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return NewReader(f, opts).Read()
}

// ReadKMZ parses the KML document inside the KMZ archive at path.
//
// The document is the first archive entry whose name ends in ".kml",
// compared case-insensitively. An archive without one returns ErrNoKMLEntry.
func ReadKMZ(path string) (Kml, error) {
	return ReadKMZFS(afero.NewOsFs(), path, DefaultReadOptions())
}

// ReadKMZFS parses the KML document inside the KMZ archive at path on fs.
func ReadKMZFS(fs afero.Fs, path string, opts ReadOptions) (Kml, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	return readKMZ(f, info.Size(), opts)
}

// ReadKMZBytes parses the KML document inside an in-memory KMZ archive.
func ReadKMZBytes(b []byte) (Kml, error) {
	return readKMZ(bytes.NewReader(b), int64(len(b)), DefaultReadOptions())
}

func readKMZ(r io.ReaderAt, size int64, opts ReadOptions) (Kml, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "open kmz archive")
	}

	for _, entry := range zr.File {
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".kml") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "open archive entry %s", entry.Name)
		}
		defer rc.Close()
		return NewReader(rc, opts).Read()
	}
	return nil, ErrNoKMLEntry
}

// ReadAny parses path as a KMZ archive when its extension is .kmz and as a
// plain KML document otherwise.
func ReadAny(fs afero.Fs, path string, opts ReadOptions) (Kml, error) {
	if strings.EqualFold(filepath.Ext(path), ".kmz") {
		return ReadKMZFS(fs, path, opts)
	}
	return ReadFileFS(fs, path, opts)
}

// WriteKMZ writes k as doc.kml inside a new KMZ archive.
func WriteKMZ(w io.Writer, k Kml, opts WriteOptions) error {
	zw := zip.NewWriter(w)
	entry, err := zw.Create("doc.kml")
	if err != nil {
		return errors.Wrap(err, "create archive entry")
	}
	if err := Write(entry, k, opts); err != nil {
		return err
	}
	return errors.Wrap(zw.Close(), "close kmz archive")
}

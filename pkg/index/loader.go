package index

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// File is a parsed document and the path it was read from.
type File struct {
	Path string
	Doc  kml.Kml
	Size int64 // Size of the file on disk, in bytes
}

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Fs is the filesystem paths are resolved against.
	// If nil, defaults to the operating system filesystem.
	Fs afero.Fs

	// Read configures the KML reader used for every file.
	Read kml.ReadOptions

	// Parallel enables concurrent file loading.
	// When true, files are loaded using multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of parallel loader goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors causes loading to continue even when individual files fail.
	// Failed files are skipped and errors are collected.
	// When false, the first error stops loading and is returned immediately.
	SkipErrors bool

	// Progress is an optional callback for tracking loading progress.
	// Called after each file is loaded (successfully or with error).
	// Parameters: (loaded, total) where loaded is count of files processed so far.
	Progress func(loaded, total int)

	// Logger receives a warning for every file that fails to load.
	// If nil, nothing is logged.
	Logger *zap.Logger

	// Cache, when set, is consulted before parsing and filled after. Files
	// whose size and modification time are unchanged are not parsed again.
	Cache *DocumentCache
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Fs:         afero.NewOsFs(),
		Read:       kml.DefaultReadOptions(),
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// LoadFile reads a single .kml or .kmz file.
func LoadFile(fs afero.Fs, path string, opts kml.ReadOptions) (File, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return File{}, errors.Wrap(err, "stat")
	}
	doc, err := kml.ReadAny(fs, path, opts)
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Doc: doc, Size: info.Size()}, nil
}

// load reads one file, through opts.Cache when it is set.
func (opts LoadOptions) load(path string) (File, error) {
	if opts.Cache == nil {
		return LoadFile(opts.Fs, path, opts.Read)
	}
	info, err := opts.Fs.Stat(path)
	if err != nil {
		return File{}, errors.Wrap(err, "stat")
	}
	key := CacheKey{Path: path, Size: info.Size(), ModTime: info.ModTime()}
	doc, err := opts.Cache.Load(key, func() (kml.Kml, error) {
		opts.Logger.Debug("parsing", zap.String("path", path))
		return kml.ReadAny(opts.Fs, path, opts.Read)
	})
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Doc: doc, Size: info.Size()}, nil
}

// LoadFiles loads multiple documents in parallel with progress reporting.
//
// This function uses a worker pool to load files concurrently. Each worker
// runs its own Reader, so a single document is still parsed sequentially.
// Loaded files are returned in the order of paths.
//
// Example:
//
//	files, errs := index.LoadFiles(paths, index.LoadOptions{
//	    Parallel:   true,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rLoading: %d/%d", loaded, total)
//	    },
//	})
//	if len(errs) > 0 {
//	    fmt.Printf("\nSkipped %d files due to errors\n", len(errs))
//	}
func LoadFiles(paths []string, opts LoadOptions) ([]File, []error) {
	if len(paths) == 0 {
		return []File{}, nil
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if !opts.Parallel {
		return loadFilesSerial(paths, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Don't create more workers than files
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index int
		file  File
		err   error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				file, err := opts.load(paths[index])
				results <- loadResult{index: index, file: file, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	loadedFiles := make(map[int]File)
	var errs []error
	loaded := 0

	for result := range results {
		loaded++
		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			err := errors.Wrapf(result.err, "%s", paths[result.index])
			opts.Logger.Warn("load failed", zap.String("path", paths[result.index]), zap.Error(result.err))
			if !opts.SkipErrors {
				// Remaining results are drained by the buffered channel.
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		loadedFiles[result.index] = result.file
	}

	files := make([]File, 0, len(loadedFiles))
	for i := range paths {
		if f, ok := loadedFiles[i]; ok {
			files = append(files, f)
		}
	}
	return files, errs
}

// loadFilesSerial loads files one at a time (fallback when Parallel=false).
func loadFilesSerial(paths []string, opts LoadOptions) ([]File, []error) {
	files := make([]File, 0, len(paths))
	var errs []error

	for i, path := range paths {
		file, err := opts.load(path)
		if opts.Progress != nil {
			opts.Progress(i+1, len(paths))
		}
		if err != nil {
			err = errors.Wrapf(err, "%s", path)
			opts.Logger.Warn("load failed", zap.String("path", path), zap.Error(err))
			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		files = append(files, file)
	}
	return files, errs
}

// FindFiles returns the .kml and .kmz files below root in lexical order.
func FindFiles(fs afero.Fs, root string) ([]string, error) {
	var paths []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".kml", ".kmz":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk directory")
	}
	return paths, nil
}

// BuildFromDir builds an index by scanning a directory tree.
//
// The function recursively searches for .kml and .kmz files and loads them
// according to opts. It fails when no file is found or none can be loaded;
// otherwise per-file errors are returned alongside the index.
//
// Example:
//
//	idx, errs, err := index.BuildFromDir(afero.NewOsFs(), "/data/kml",
//	    index.DefaultLoadOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d placemarks, %d files skipped\n", idx.Count(), len(errs))
func BuildFromDir(fs afero.Fs, root string, opts LoadOptions) (*Index, []error, error) {
	paths, err := FindFiles(fs, root)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, errors.Newf("no KML files found in %s", root)
	}

	opts.Fs = fs
	files, errs := LoadFiles(paths, opts)
	if len(files) == 0 {
		if len(errs) == 1 {
			return nil, errs, errors.Wrap(errs[0], "no files could be loaded")
		}
		return nil, errs, errors.Newf("no files could be loaded (%d errors)", len(errs))
	}
	return BuildFromFiles(files), errs, nil
}

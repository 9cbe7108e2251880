package main

import (
	"fmt"

	"github.com/beetlebugorg/kml/pkg/index"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		bbox    string
		workers int
		cacheMB int64
	)
	cmd := &cobra.Command{
		Use:   "query --bbox minLon,minLat,maxLon,maxLat PATH...",
		Short: "List placemarks intersecting a bounding box",
		Long: "Index the placemarks of every given file, or of every .kml and .kmz file\n" +
			"below a given directory, and print those intersecting the bounding box.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := index.ParseBounds(bbox)
			if err != nil {
				return err
			}

			var paths []string
			seen := make(map[string]bool)
			add := func(p string) {
				if !seen[p] {
					seen[p] = true
					paths = append(paths, p)
				}
			}
			for _, arg := range args {
				info, err := a.fs.Stat(arg)
				if err != nil {
					return errors.Wrapf(err, "stat %s", arg)
				}
				if !info.IsDir() {
					add(arg)
					continue
				}
				found, err := index.FindFiles(a.fs, arg)
				if err != nil {
					return err
				}
				for _, p := range found {
					add(p)
				}
			}

			opts := index.DefaultLoadOptions()
			opts.Fs = a.fs
			opts.Read = a.readOptions()
			opts.Logger = a.log
			if cacheMB > 0 {
				opts.Cache = index.NewDocumentCache(cacheMB << 20)
			}
			if workers > 0 {
				opts.Workers = workers
			}
			files, errs := index.LoadFiles(paths, opts)
			if len(files) == 0 && len(errs) > 0 {
				return errors.Wrap(errs[0], "no files could be loaded")
			}

			idx := index.BuildFromFiles(files)
			a.log.Debug("indexed",
				zap.Int("files", len(files)),
				zap.Int("skipped", len(errs)),
				zap.Int("placemarks", idx.Count()),
			)
			if opts.Cache != nil {
				st := opts.Cache.Stats()
				a.log.Debug("document cache", zap.Int("hits", st.Hits), zap.Int("rejected", st.Rejected))
			}

			out := cmd.OutOrStdout()
			for _, e := range idx.Query(bounds) {
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", e.Source, e.Name, e.GeoHash, e.Bounds); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&bbox, "bbox", "", "bounding box as minLon,minLat,maxLon,maxLat")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel loaders (default: number of CPUs)")
	cmd.Flags().Int64Var(&cacheMB, "cache-mb", 256, "document cache size in MB (0 disables)")
	_ = cmd.MarkFlagRequired("bbox")
	return cmd
}

package main

import (
	"fmt"

	"github.com/beetlebugorg/kml/pkg/flatten"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// encoder turns one planar geometry into a line of output.
type encoder func(g geom.T, digits int) (string, error)

func newGeoJSONCmd(a *app) *cobra.Command {
	return newConvertCmd(a, "geojson", "Print each geometry as a GeoJSON object",
		func(g geom.T, digits int) (string, error) {
			b, err := flatten.ToGeoJSON(g, digits)
			return string(b), err
		})
}

func newWKTCmd(a *app) *cobra.Command {
	return newConvertCmd(a, "wkt", "Print each geometry as well-known text", flatten.ToWKT)
}

func newConvertCmd(a *app, name, short string, enc encoder) *cobra.Command {
	var (
		digits int
		skip   bool
	)
	cmd := &cobra.Command{
		Use:   name + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.read(args[0])
			if err != nil {
				return err
			}
			geoms, err := flatten.FlattenWithOptions(doc, flatten.Options{SkipUnsupported: skip})
			if err != nil {
				return err
			}
			a.log.Debug("flattened", zap.Int("geometries", len(geoms)))

			out := cmd.OutOrStdout()
			for _, g := range geoms {
				s, err := enc(g, digits)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&digits, "digits", flatten.DefaultDecimalDigits, "maximum decimal digits per coordinate")
	cmd.Flags().BoolVar(&skip, "skip-unsupported", false, "drop geometry kinds without a planar form (gx:Track, Model)")
	return cmd
}

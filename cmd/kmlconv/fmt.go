package main

import (
	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		indent bool
		decl   bool
		kmzOut string
	)
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Parse a document and write it back out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.read(args[0])
			if err != nil {
				return err
			}
			opts := kml.WriteOptions{Indent: indent, Declaration: decl}

			if kmzOut != "" {
				f, err := a.fs.Create(kmzOut)
				if err != nil {
					return errors.Wrapf(err, "create %s", kmzOut)
				}
				defer f.Close()
				if err := kml.WriteKMZ(f, doc, opts); err != nil {
					return err
				}
				a.log.Info("wrote archive", zap.String("path", kmzOut))
				return nil
			}

			out := cmd.OutOrStdout()
			if err := kml.Write(out, doc, opts); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", true, "indent nested elements")
	cmd.Flags().BoolVar(&decl, "decl", true, "write an XML declaration")
	cmd.Flags().StringVar(&kmzOut, "kmz", "", "write a KMZ archive to this path instead of stdout")
	return cmd
}

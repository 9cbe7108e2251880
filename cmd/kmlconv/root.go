package main

import (
	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all commands.
type app struct {
	fs      afero.Fs
	log     *zap.Logger
	verbose bool
	lenient bool
}

func newApp() *app {
	return &app{fs: afero.NewOsFs(), log: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "kmlconv",
		Short:         "Reformat, convert and query KML documents",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	a.addFlags(root.PersistentFlags())

	root.AddCommand(
		newFmtCmd(a),
		newGeoJSONCmd(a),
		newWKTCmd(a),
		newQueryCmd(a),
		newInfoCmd(a),
	)
	return root
}

func (a *app) addFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.lenient, "lenient", false, "accept HTML entities and other non-strict XML")
}

func (a *app) initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	a.log = log
	return nil
}

func (a *app) readOptions() kml.ReadOptions {
	opts := kml.DefaultReadOptions()
	opts.Strict = !a.lenient
	return opts
}

// read parses a .kml or .kmz file.
func (a *app) read(path string) (kml.Kml, error) {
	a.log.Debug("reading", zap.String("path", path))
	doc, err := kml.ReadAny(a.fs, path, a.readOptions())
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return doc, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wstr/internal/config"
	"github.com/katalvlaran/wstr/internal/logging"
	"github.com/katalvlaran/wstr/wsio"
)

// app carries the resolved configuration through the command tree.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "wstr",
		Short: "Inspect weighted (uncertain) symbol sequences",
		Long: "wstr reads weighted sequences in the matrix text format, where every\n" +
			"position is a probability distribution over an alphabet, and derives\n" +
			"consensus strings, profile matrices and well-formedness reports.\n" +
			"FILE may be omitted or '-' to read standard input.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init(cmd) },
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.Bool("strict", config.DefaultStrict, "reject positions that do not sum to one within tolerance")
	pf.Bool("gap", config.DefaultGap, "use the last alphabet symbol as the gap")
	pf.Float64("tolerance", config.DefaultTolerance, "slack allowed on each position's total mass")
	pf.Bool("dna", config.DefaultDNA, "dense nucleotide storage with ambiguity codes")
	pf.Bool("collection", config.DefaultCollection, "read the collection layout")
	pf.StringP("output", "o", config.DefaultOutputFormat, "report format (text, json, yaml)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (console, json)")

	cmd.AddCommand(
		newConsensusCmd(a),
		newProfileCmd(a),
		newCheckCmd(a),
		newConvertCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Bool("strict", cfg.Parse.Strict),
		zap.Bool("gap", cfg.Parse.Gap),
		zap.Float64("tolerance", cfg.Parse.Tolerance),
		zap.Bool("dna", cfg.Parse.DNA),
		zap.Bool("collection", cfg.Parse.Collection),
	)

	return nil
}

// read decodes the FILE argument, or standard input when it is absent or "-".
func (a *app) read(cmd *cobra.Command, args []string, opts ...wsio.Option) (input, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	in, err := load(r, a.cfg.Parse, opts...)
	if err != nil {
		a.log.Error("decode failed", zap.String("file", name), zap.Error(err))

		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info("decoded input",
		zap.String("file", name),
		zap.String("store", in.Store()),
		zap.String("alphabet", in.Alphabet()),
		zap.Int("sequences", in.Sequences()),
	)

	return in, nil
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wstr/matrix"
	"github.com/katalvlaran/wstr/wsio"
)

// errNotWellFormed makes check exit non-zero after its report is printed.
var errNotWellFormed = errors.New("input has positions that are not well-formed")

type consensusReport struct {
	Store      string   `json:"store" yaml:"store"`
	Alphabet   string   `json:"alphabet" yaml:"alphabet"`
	IncludeGap bool     `json:"include_gap" yaml:"include_gap"`
	Sequences  []string `json:"sequences" yaml:"sequences"`
}

type profileReport struct {
	Symbols  string        `json:"symbols" yaml:"symbols"`
	Profiles [][][]float64 `json:"profiles" yaml:"profiles"`
}

type positionReport struct {
	Sequence int     `json:"sequence" yaml:"sequence"`
	Position int     `json:"position" yaml:"position"`
	Sum      float64 `json:"sum" yaml:"sum"`
	Good     bool    `json:"good" yaml:"good"`
}

type checkReport struct {
	Tolerance float64          `json:"tolerance" yaml:"tolerance"`
	Positions int              `json:"positions" yaml:"positions"`
	Failed    int              `json:"failed" yaml:"failed"`
	Bad       []positionReport `json:"bad,omitempty" yaml:"bad,omitempty"`
}

func newConsensusCmd(a *app) *cobra.Command {
	var noGap bool
	cmd := &cobra.Command{
		Use:   "consensus [FILE]",
		Short: "Print the heaviest symbol of every position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(cmd, args)
			if err != nil {
				return err
			}
			seqs, err := in.Consensus(!noGap)
			if err != nil {
				return err
			}
			report := consensusReport{Store: in.Store(), Alphabet: in.Alphabet(), IncludeGap: !noGap, Sequences: seqs}

			return render(cmd.OutOrStdout(), a.cfg.Output.Format, report, func(w io.Writer) error {
				for _, s := range seqs {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&noGap, "no-gap", false, "omit positions whose heaviest symbol is the gap")

	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var (
		symbols   string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "profile [FILE]",
		Short: "Print the position × symbol probability matrix of every sequence",
		Long: "profile prints one matrix per sequence, one row per position and one\n" +
			"column per symbol. Columns default to the input alphabet; with --dna,\n" +
			"ambiguity codes may be listed and report their summed mass.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(cmd, args)
			if err != nil {
				return err
			}
			cols := symbols
			if cols == "" {
				cols = in.Alphabet()
			}
			ms, err := in.Profiles(cols)
			if err != nil {
				return err
			}
			if normalize {
				for i, m := range ms {
					if m == nil {
						continue
					}
					if ms[i], _, err = matrix.NormalizeRowsL1(m); err != nil {
						return err
					}
				}
			}

			report := profileReport{Symbols: cols, Profiles: make([][][]float64, len(ms))}
			for i, m := range ms {
				report.Profiles[i] = rows(m)
			}

			return render(cmd.OutOrStdout(), a.cfg.Output.Format, report, func(w io.Writer) error {
				for i, m := range ms {
					if _, err := fmt.Fprintf(w, "# sequence %d (%s)\n", i, cols); err != nil {
						return err
					}
					if m == nil {
						continue
					}
					if _, err := io.WriteString(w, m.String()); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "column symbols (default: the input alphabet)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale every row to sum to one")

	return cmd
}

// rows copies m into nested slices; a nil matrix yields an empty profile.
func rows(m *matrix.Dense) [][]float64 {
	if m == nil {
		return [][]float64{}
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Report positions whose mass is not one within tolerance",
		Long: "check always decodes leniently and then tests every position with the\n" +
			"configured tolerance. It exits non-zero when any position fails.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(cmd, args, wsio.WithLenient())
			if err != nil {
				return err
			}
			positions := in.Check()
			report := checkReport{Tolerance: a.cfg.Parse.Tolerance, Positions: len(positions)}
			for _, p := range positions {
				if !p.Good {
					report.Failed++
					report.Bad = append(report.Bad, p)
				}
			}

			err = render(cmd.OutOrStdout(), a.cfg.Output.Format, report, func(w io.Writer) error {
				for _, p := range report.Bad {
					if _, err := fmt.Fprintf(w, "sequence %d position %d: sum %g\n", p.Sequence, p.Position, p.Sum); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, "%d of %d positions well-formed (tolerance %g)\n",
					report.Positions-report.Failed, report.Positions, report.Tolerance)

				return err
			})
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				a.log.Warn("malformed positions", zap.Int("failed", report.Failed))

				return fmt.Errorf("%w: %d of %d", errNotWellFormed, report.Failed, report.Positions)
			}

			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var alphabet string
	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Re-encode the input in normalised text form",
		Long: "convert decodes the input and writes it back in the same layout with\n" +
			"one position per line, optionally reordering or extending the columns\n" +
			"with --alphabet.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(cmd, args)
			if err != nil {
				return err
			}
			alpha := alphabet
			if alpha == "" {
				alpha = in.Alphabet()
			}
			if alpha == "" {
				return nil // empty input
			}

			return in.Encode(cmd.OutOrStdout(), alpha)
		},
	}
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "output column order (default: the input alphabet)")

	return cmd
}

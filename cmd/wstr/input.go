package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/dna"
	"github.com/katalvlaran/wstr/internal/config"
	"github.com/katalvlaran/wstr/matrix"
	"github.com/katalvlaran/wstr/weighted"
	"github.com/katalvlaran/wstr/wsio"
)

// input is a decoded file, whatever store strategy backs it.
type input interface {
	// Sequences returns the number of decoded sequences.
	Sequences() int
	// Alphabet returns the alphabet token of the input.
	Alphabet() string
	// Store names the store strategy.
	Store() string
	Consensus(includeGap bool) ([]string, error)
	Profiles(symbols string) ([]*matrix.Dense, error)
	Check() []positionReport
	Encode(w io.Writer, alphabet string) error
}

type decoded[D distribution.Store[byte]] struct {
	seqs       weighted.Collection[D]
	alphabet   string
	store      string
	collection bool
}

// decodeAll reads every record of r. In collection mode the members of all
// collections in the stream are concatenated.
func decodeAll[D distribution.Store[byte]](r io.Reader, newStore func() D, name string, p config.ParseConfig, opts ...wsio.Option) (*decoded[D], error) {
	dec := wsio.NewDecoder(r, newStore, opts...)
	out := &decoded[D]{store: name, collection: p.Collection}
	for {
		if p.Collection {
			c, err := dec.DecodeCollection()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, err
			}
			out.seqs = append(out.seqs, c...)
		} else {
			seq, err := dec.DecodeSequence()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, err
			}
			out.seqs = append(out.seqs, seq)
		}
		if out.alphabet == "" {
			out.alphabet = dec.Alphabet()
		}
	}

	return out, nil
}

// load decodes r with the strategy selected by p. opts are appended after
// the options derived from p.
func load(r io.Reader, p config.ParseConfig, opts ...wsio.Option) (input, error) {
	all := append(p.Options(), opts...)
	switch {
	case p.DNA && p.Gap:
		in, err := decodeAll(r, dna.NewGapStore, "dna-gap", p, all...)
		if err != nil {
			return nil, err
		}
		in.seqs.SetGap(dna.Gap)

		return in, nil
	case p.DNA:
		in, err := decodeAll(r, dna.NewStore, "dna", p, all...)
		if err != nil {
			return nil, err
		}

		return in, nil
	default:
		in, err := decodeAll(r, wsio.NewSparseStore, "sparse", p, all...)
		if err != nil {
			return nil, err
		}

		return in, nil
	}
}

func (d *decoded[D]) Sequences() int   { return d.seqs.Len() }
func (d *decoded[D]) Alphabet() string { return d.alphabet }
func (d *decoded[D]) Store() string    { return d.store }

func (d *decoded[D]) Consensus(includeGap bool) ([]string, error) {
	return d.seqs.Consensus(includeGap)
}

func (d *decoded[D]) Profiles(symbols string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(d.seqs))
	for i, seq := range d.seqs {
		if seq.Len() == 0 {
			out = append(out, nil)
			continue
		}
		m, err := seq.Profile([]byte(symbols))
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

func (d *decoded[D]) Check() []positionReport {
	var out []positionReport
	for i, seq := range d.seqs {
		for j, sy := range seq.Symbols() {
			out = append(out, positionReport{
				Sequence: i,
				Position: j,
				Sum:      sy.Sum(),
				Good:     sy.IsGood(),
			})
		}
	}

	return out
}

func (d *decoded[D]) Encode(w io.Writer, alphabet string) error {
	if d.collection {
		return wsio.WriteCollection(w, d.seqs, alphabet)
	}
	for i, seq := range d.seqs {
		if err := wsio.WriteSequence(w, seq, alphabet); err != nil {
			return fmt.Errorf("sequence %d: %w", i, err)
		}
	}

	return nil
}

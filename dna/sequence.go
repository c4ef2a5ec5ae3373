package dna

import (
	"io"

	"github.com/katalvlaran/wstr/distribution"
	"github.com/katalvlaran/wstr/weighted"
	"github.com/katalvlaran/wstr/wsio"
)

type (
	// Symbol is one nucleotide position.
	Symbol = weighted.Symbol[*Store]

	// Sequence is a nucleotide sequence.
	Sequence = weighted.Sequence[*Store]

	// Collection is a list of nucleotide sequences.
	Collection = weighted.Collection[*Store]
)

// NewSymbol builds a position from base values in Nucleotides order
// (A, C, G, T), optionally followed by the gap value.
func NewSymbol(values []float64, opts ...weighted.Option) (*Symbol, error) {
	alpha := Nucleotides
	if len(values) == NucleotidesGap.Len() {
		alpha = NucleotidesGap
	}
	d, err := distribution.DenseOf(alpha, values...)
	if err != nil {
		return nil, err
	}

	return weighted.NewSymbol(&Store{Dense: d}, opts...)
}

// NewSequence returns an empty sequence without a gap.
func NewSequence() *Sequence { return weighted.NewSequence[*Store]() }

// NewGapSequence returns an empty sequence whose gap is preset to Gap.
func NewGapSequence() *Sequence {
	seq := weighted.NewSequence[*Store]()
	seq.SetGap(Gap)

	return seq
}

// ReadSequence decodes one sequence over Nucleotides. A nonzero gap column
// fails with distribution.ErrUnknownSymbol.
func ReadSequence(r io.Reader, opts ...wsio.Option) (*Sequence, error) {
	return wsio.NewDecoder(r, NewStore, opts...).DecodeSequence()
}

// ReadGapSequence decodes one sequence over NucleotidesGap into a sequence
// whose gap is Gap.
func ReadGapSequence(r io.Reader, opts ...wsio.Option) (*Sequence, error) {
	seq := NewGapSequence()
	if err := wsio.NewDecoder(r, NewGapStore, opts...).DecodeSequenceInto(seq); err != nil {
		return nil, err
	}

	return seq, nil
}

// ReadCollection decodes one collection over Nucleotides.
func ReadCollection(r io.Reader, opts ...wsio.Option) (Collection, error) {
	return wsio.NewDecoder(r, NewStore, opts...).DecodeCollection()
}

// ReadGapCollection decodes one collection over NucleotidesGap and sets
// Gap on every member.
func ReadGapCollection(r io.Reader, opts ...wsio.Option) (Collection, error) {
	c, err := wsio.NewDecoder(r, NewGapStore, opts...).DecodeCollection()
	if err != nil {
		return nil, err
	}
	c.SetGap(Gap)

	return c, nil
}

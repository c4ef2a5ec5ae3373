package dna

import "github.com/katalvlaran/wstr/distribution"

// Store is a dense nucleotide store that decodes ambiguity codes on Get.
// All other operations are those of the embedded Dense store: Heaviest only
// ever returns a base (or the gap), and writing a code fails with
// distribution.ErrUnknownSymbol.
type Store struct {
	*distribution.Dense[byte]
}

var _ distribution.Store[byte] = (*Store)(nil)

// NewStore returns an empty store over Nucleotides.
func NewStore() *Store { return &Store{Dense: distribution.NewDense(Nucleotides)} }

// NewGapStore returns an empty store over NucleotidesGap.
func NewGapStore() *Store { return &Store{Dense: distribution.NewDense(NucleotidesGap)} }

// Get returns the mass of a base, or the summed mass of the bases behind an
// ambiguity code.
func (st *Store) Get(c byte) float64 {
	bases, ok := ambiguity[c]
	if !ok {
		return st.Dense.Get(c)
	}
	var p float64
	for i := 0; i < len(bases); i++ {
		p += st.Dense.Get(bases[i])
	}

	return p
}

// Clone returns an independent copy.
func (st *Store) Clone() *Store { return &Store{Dense: st.Dense.Clone()} }

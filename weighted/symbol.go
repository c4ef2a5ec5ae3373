package weighted

import "github.com/katalvlaran/wstr/distribution"

// Symbol is an Element over single-character (byte) alphabets. It carries no
// extra state; it only adds queries parameterised by an excluded symbol,
// typically the gap marker of the enclosing sequence.
//
// When D decodes extended symbols (see package dna), Probability of an
// ambiguity code already returns the summed mass of the bases it stands for.
type Symbol[D distribution.Store[byte]] struct {
	Element[byte, D]
}

// NewSymbol wraps dist under the same rules as NewElement.
func NewSymbol[D distribution.Store[byte]](dist D, opts ...Option) (*Symbol[D], error) {
	el, err := NewElement[byte](dist, opts...)
	if err != nil {
		return nil, err
	}

	return &Symbol[D]{Element: *el}, nil
}

// HeaviestExcluding returns the heaviest symbol other than gap.
// Fails with distribution.ErrNoAlternative when gap is the only entry.
func (sy *Symbol[D]) HeaviestExcluding(gap byte) (byte, error) {
	return sy.dist.HeaviestExcluding(gap)
}

// HeaviestExcludingProbability returns the mass paired with HeaviestExcluding.
func (sy *Symbol[D]) HeaviestExcludingProbability(gap byte) (float64, error) {
	s, err := sy.dist.HeaviestExcluding(gap)
	if err != nil {
		return 0, err
	}

	return sy.dist.Get(s), nil
}

// Equal compares the underlying distributions semantically.
func (sy *Symbol[D]) Equal(other *Symbol[D]) bool {
	if sy == nil || other == nil {
		return sy == other
	}

	return sy.Element.Equal(&other.Element)
}

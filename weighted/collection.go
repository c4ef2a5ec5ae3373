package weighted

import (
	"fmt"

	"github.com/katalvlaran/wstr/distribution"
)

// Collection is an ordered list of sequences. It adds no invariants beyond
// those of its members. A nil member behaves as an empty sequence without a
// gap.
type Collection[D distribution.Store[byte]] []*Sequence[D]

// Len returns the number of sequences.
func (c Collection[D]) Len() int { return len(c) }

// SetGap designates g as the gap of every member.
func (c Collection[D]) SetGap(g byte) {
	for _, seq := range c {
		if seq != nil {
			seq.SetGap(g)
		}
	}
}

// Consensus returns Consensus(includeGap) of every member, in order.
func (c Collection[D]) Consensus(includeGap bool) ([]string, error) {
	out := make([]string, len(c))
	for i, seq := range c {
		if seq == nil {
			continue
		}
		s, err := seq.Consensus(includeGap)
		if err != nil {
			return nil, fmt.Errorf("Collection.Consensus sequence %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

// Equal compares members positionally.
func (c Collection[D]) Equal(other Collection[D]) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] == nil || other[i] == nil {
			if c[i] != other[i] {
				return false
			}
			continue
		}
		if !c[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

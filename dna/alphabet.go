package dna

import (
	"sort"

	"github.com/katalvlaran/wstr/distribution"
)

// Gap is the gap symbol of the nucleotide alphabet.
const Gap byte = '-'

var (
	// Nucleotides is the plain DNA alphabet.
	Nucleotides = distribution.MustLetters("ACGT")

	// NucleotidesGap is the DNA alphabet with the gap as last symbol.
	NucleotidesGap = distribution.MustLetters("ACGT-")
)

// ambiguity maps each IUPAC code to the bases it represents. The base order
// is also the summation order.
var ambiguity = map[byte]string{
	'R': "GA",
	'Y': "TC",
	'M': "AC",
	'K': "GT",
	'S': "GC",
	'W': "AT",
	'H': "ACT",
	'B': "GCT",
	'V': "GCA",
	'D': "GAT",
	'N': "GATC",
}

// Expand returns the bases represented by an ambiguity code.
func Expand(code byte) (string, bool) {
	bases, ok := ambiguity[code]

	return bases, ok
}

// IsAmbiguity reports whether c is an ambiguity code.
func IsAmbiguity(c byte) bool {
	_, ok := ambiguity[c]

	return ok
}

// Codes returns every ambiguity code in ascending order.
func Codes() []byte {
	out := make([]byte, 0, len(ambiguity))
	for c := range ambiguity {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

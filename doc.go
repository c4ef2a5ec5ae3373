// Package wstr is a toolkit for weighted (uncertain) symbol sequences: strings
// in which every position is a probability distribution over an alphabet
// rather than a single letter.
//
// 🚀 What is in the box?
//
//   - Distribution stores: Sparse (open alphabets, insertion order) and
//     Dense (fixed alphabets, O(1) indexed access), behind one Store contract
//   - Weighted elements, symbols, sequences and collections with validated
//     construction (Σp = 1 within a tolerance) and consensus extraction
//   - DNA: ACGT / ACGT- alphabets with IUPAC ambiguity codes (R, Y, … N)
//     answered as summed base probabilities
//   - wsio: a streaming decoder and encoder for the matrix text format, with
//     per-call strict / gap / tolerance modes
//   - matrix: position × symbol profile export
//   - cmd/wstr: consensus, profile, check and convert from the command line
//
// Packages:
//
//	distribution/ — Store[S], Sparse[S], Dense[S], Alphabet[S]
//	weighted/     — Element, Symbol, Sequence, Collection, options
//	dna/          — nucleotide alphabets, ambiguity decoding, gap presets
//	wsio/         — Decoder, Encoder, parse options
//	matrix/       — Dense float64 matrix, row sums, L1 row normalisation
//
// Quick example (gap '-'):
//
//	3 ACGT-
//	.1 .1 .6 .1 .1     → G
//	0 0 .2 0 .8        → -
//	.5 .2 .3 0 0       → A
//
//	consensus with gap:    "G-A"
//	consensus without gap: "GA"
//
//	go get github.com/katalvlaran/wstr
package wstr

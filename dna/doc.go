// Package dna specialises weighted sequences for nucleotides.
//
// Two fixed alphabets are provided, Nucleotides ("ACGT") and NucleotidesGap
// ("ACGT-"), with '-' as the gap. Store is a dense store over one of them
// that also answers the IUPAC ambiguity codes: the probability of a code is
// the summed probability of the bases it stands for (R = G+A, N = G+A+T+C).
// Codes are read-only; writing one fails with distribution.ErrUnknownSymbol.
//
//	seq, err := dna.ReadGapSequence(r)   // gap preset to '-'
//	s, _ := seq.Consensus(false)         // ungapped consensus
package dna

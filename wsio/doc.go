// Package wsio reads and writes weighted sequences in a plain matrix text
// format.
//
// A Decoder is generic over the store strategy: pass a factory such as
// NewSparseStore, DenseStores(alphabet) or dna.NewStore. Parse modes
// (strict validation, gap convention, tolerance) are per-decoder Options
// rather than shared state.
//
//	dec := wsio.NewDecoder(r, wsio.NewSparseStore, wsio.WithTolerance(1e-9))
//	seq, err := dec.DecodeSequence()
//
// Errors:
//   - ErrMalformedInput for token-level problems.
//   - weighted.ErrInvalidProbabilityMass for a position rejected under strict mode.
//   - distribution.ErrUnknownSymbol / ErrBadProbability from the store.
//   - io.EOF when the stream is exhausted before a new record starts.
//
// Encoding goes through the profile matrix of a sequence (package matrix),
// one row per position and one column per alphabet symbol.
package wsio

// SPDX-License-Identifier: MIT
// Package distribution: sentinel error set.
// Every message is prefixed with "distribution: ..." so it can be grepped in
// logs. Stores wrap these sentinels with method context via fmt.Errorf("%w");
// callers match them with errors.Is.

package distribution

import "errors"

var (
	// ErrEmptyDistribution is returned by heaviest-symbol queries on a store
	// that holds no entries at all.
	ErrEmptyDistribution = errors.New("distribution: no entries")

	// ErrUnknownSymbol signals a write through a Dense store with a symbol
	// outside its fixed alphabet. Reads never return it (absent ⇒ 0).
	ErrUnknownSymbol = errors.New("distribution: symbol not in alphabet")

	// ErrNoAlternative is returned by HeaviestExcluding when removing the
	// excluded symbol leaves no other entry to choose from.
	ErrNoAlternative = errors.New("distribution: no entry besides the excluded symbol")

	// ErrBadProbability rejects NaN, ±Inf and negative writes. Values above 1
	// are legal; mass validation belongs to the weighted package.
	ErrBadProbability = errors.New("distribution: probability must be finite and non-negative")

	// ErrEmptyAlphabet indicates an attempt to build an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("distribution: alphabet is empty")

	// ErrDuplicateSymbol indicates that an alphabet listed the same symbol twice,
	// which would break the symbol↔index bijection.
	ErrDuplicateSymbol = errors.New("distribution: duplicate symbol in alphabet")

	// ErrLengthMismatch signals that a positional value list does not match
	// the alphabet size.
	ErrLengthMismatch = errors.New("distribution: value count does not match alphabet size")
)

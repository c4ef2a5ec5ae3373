package wsio

import "errors"

var (
	// ErrMalformedInput signals a token that does not fit the text format:
	// a missing token (wrapping io.ErrUnexpectedEOF), a non-numeric count or
	// value (wrapping the strconv error), a negative count or an alphabet
	// with a repeated symbol.
	ErrMalformedInput = errors.New("wsio: malformed input")
)

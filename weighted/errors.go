package weighted

import "errors"

var (
	// ErrInvalidProbabilityMass is returned by strict construction when the
	// distribution does not sum to one within tolerance + machine epsilon.
	ErrInvalidProbabilityMass = errors.New("weighted: probabilities do not sum to one")

	// ErrBadTolerance rejects a NaN, ±Inf or negative tolerance passed to SetTolerance.
	ErrBadTolerance = errors.New("weighted: tolerance must be finite and non-negative")

	// ErrIndexOutOfRange signals a sequence position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("weighted: position out of range")

	// ErrNilSymbol rejects storing a nil *Symbol in a sequence.
	ErrNilSymbol = errors.New("weighted: nil symbol")

	// ErrEmptySequence is returned where at least one position is required.
	ErrEmptySequence = errors.New("weighted: sequence is empty")
)

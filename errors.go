package oskiplist

import "errors"

// Expected domain errors, returned directly (never wrapped) by the range
// and slice operations. Callers should compare with errors.Is.
var (
	// ErrStartKeyGreaterThanStopKey is returned by RemoveSliceByKey when
	// startKey orders strictly after stopKey.
	ErrStartKeyGreaterThanStopKey = errors.New("oskiplist: start key is greater than stop key")

	// ErrStartIndexGreaterThanStopIndex is returned by RemoveSliceByIndex
	// when, after normalizing negative indices, start orders strictly
	// after stop.
	ErrStartIndexGreaterThanStopIndex = errors.New("oskiplist: start index is greater than stop index")

	// ErrMissingKey is returned by operations that require an exact key
	// match and did not find one.
	ErrMissingKey = errors.New("oskiplist: key not found")

	// ErrMissingStartKey is returned by RemoveSliceByKey when the list is
	// non-empty, startKey is absent and startKey != stopKey.
	ErrMissingStartKey = errors.New("oskiplist: start key not found")

	// ErrMissingEndKey is returned by RemoveSliceByKey when the list is
	// non-empty, stopKey is absent and startKey != stopKey.
	ErrMissingEndKey = errors.New("oskiplist: stop key not found")

	// ErrInvalidIndex is returned by RemoveSliceByIndex when, after
	// normalization, start == stop (an empty by-index range is rejected
	// rather than treated as a no-op, unlike the by-key form).
	ErrInvalidIndex = errors.New("oskiplist: invalid index range")

	// ErrInvalidStopIndex is returned by the index-bounded slice
	// constructors when stop falls outside [-size, size].
	ErrInvalidStopIndex = errors.New("oskiplist: stop index out of range")

	// ErrStepIsZero is returned by the slice constructors when step == 0.
	ErrStepIsZero = errors.New("oskiplist: step must not be zero")

	// ErrKeyIsSentinel is a contract-violation error: a key equal to the
	// type's sentinel can never be stored. Put panics instead of
	// returning this for most callers, but it is exported so a caller
	// that validates user-supplied keys ahead of a Put can check for it.
	ErrKeyIsSentinel = errors.New("oskiplist: key equals the sentinel value")
)

package bytebuffer

import "github.com/pkg/errors"

// Errors returned by cursor operations. Every operation validates all of its
// preconditions before mutating anything, so a non-nil error always means the
// cursor's position and storage are exactly as they were before the call.
//
// Returned errors may carry extra context, compare with errors.Cause:
//
//	if errors.Cause(err) == bytebuffer.ErrEOF { ... }
var (
	// ErrEOF is returned by reads that request more bits or bytes than remain.
	ErrEOF = errors.New("read past the end of the buffer")

	// ErrOutOfBounds is returned by writes that would require more growth than
	// the cursor's growth policy permits.
	ErrOutOfBounds = errors.New("write out of bounds")

	// ErrInvalidSeek is returned when a seek target falls outside [0, Len()].
	ErrInvalidSeek = errors.New("seek target out of range")

	// ErrMisaligned is returned by byte-oriented operations attempted while
	// the cursor is not on a byte boundary.
	ErrMisaligned = errors.New("cursor is not byte aligned")

	// ErrInvalidWidth is returned when a requested bit-width is zero or
	// exceeds the width of the target integer.
	ErrInvalidWidth = errors.New("invalid bit width")
)

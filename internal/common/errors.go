package common

import "errors"

// Sentinel errors returned by pkg/algebra, pkg/transcript and pkg/dory.
//
// Verify never returns one of these for a merely-invalid proof; it only
// returns false. These are reserved for malformed inputs detected before
// any pairing work is attempted.
var (
	// ErrLengthMismatch is returned when two vectors that must have equal
	// length (e.g. a commitment key and a witness vector) do not.
	ErrLengthMismatch = errors.New("dory: vector length mismatch")

	// ErrNotPowerOfTwo is returned when a vector length passed to Setup,
	// Precompute, Prove or Verify is not a power of two, or is zero.
	ErrNotPowerOfTwo = errors.New("dory: length is not a power of two")

	// ErrEmptyVector names an empty-vector failure. No function in this
	// module returns it; a zero-length vector is rejected with
	// ErrNotPowerOfTwo instead.
	ErrEmptyVector = errors.New("dory: vector is empty")

	// ErrNotInvertible is returned when a sampled challenge is not
	// invertible in the scalar field after exhausting the rejection
	// sampling budget.
	ErrNotInvertible = errors.New("dory: challenge resampling exhausted")

	// ErrTruncatedEncoding is returned by the Decode* functions when the
	// input byte slice ends before a length-prefixed field is fully read.
	ErrTruncatedEncoding = errors.New("dory: truncated encoding")

	// ErrSRSMismatch is returned when a proof's round count does not match
	// the SRS it is being verified against.
	ErrSRSMismatch = errors.New("dory: proof does not match SRS depth")
)

// Package transcript implements the Fiat-Shamir random oracle the DORY
// argument binds its rounds to.
//
// A Transcript absorbs the canonical byte encoding of public messages and
// emits 128-bit scalar challenges lifted into the BLS12-381 scalar field.
// Challenges that require an inverse (beta, alpha, the final d) are drawn
// by a rejection-sampling loop keyed by an incrementing counter nonce; the
// loop returns the pair with positions swapped, (inverse, value), which
// callers must rename back to the natural order themselves. This swap is
// a deliberate protocol convention, not an implementation accident. The
// tests check that the two returned values are mutual inverses and that
// the draw is deterministic; there is no known-answer vector for it.
package transcript

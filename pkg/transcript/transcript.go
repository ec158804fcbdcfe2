package transcript

import (
	"encoding/binary"

	"github.com/anupsv/dory-zk/internal/common"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"
)

// challengeBytes is the number of leading digest bytes lifted into a
// scalar challenge: 128 bits.
const challengeBytes = 16

// maxInvertibilityTrials bounds the rejection-sampling loop so a
// degenerate digest cannot spin forever; in practice a retry is drawn on
// the order of 1-in-2^128 of the time and the loop exits on its first
// pass.
const maxInvertibilityTrials = 1 << 20

// Transcript accumulates the serialized public messages of a single
// challenge derivation and hashes them on demand. Each challenge in the
// protocol is domain-separated only by which fields are absorbed (and the
// invertibility counter), not by any running state carried over from a
// previous challenge — so a Transcript is Reset between challenges rather
// than threaded through the whole proof. The zero value is ready to use.
type Transcript struct {
	buf []byte
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Reset clears the transcript's pending input so it can be reused for the
// next challenge.
func (t *Transcript) Reset() {
	t.buf = t.buf[:0]
}

// Absorb appends the canonical byte encodings of msgs, in order, to the
// transcript's pending input. It does not hash; hashing happens in
// Challenge128 / ChallengeInvertible so the caller controls exactly which
// fixed concatenation of messages backs a given challenge.
func (t *Transcript) Absorb(msgs ...[]byte) {
	for _, m := range msgs {
		t.buf = append(t.buf, m...)
	}
}

// digest hashes the accumulated buffer together with a counter nonce
// using blake2b-512.
func (t *Transcript) digest(counter uint64) [64]byte {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)
	return blake2b.Sum512(append(counterBytes[:], t.buf...))
}

// Challenge128 derives a single scalar challenge from the transcript's
// current buffer with no invertibility requirement and no counter nonce
// (used for ch_c, the opening challenge, which needs neither).
func (t *Transcript) Challenge128() fr.Element {
	d := blake2b.Sum512(t.buf)
	return liftChallenge(d[:challengeBytes])
}

// ChallengeInvertible derives a scalar challenge that is guaranteed
// invertible in F, retrying with an incrementing counter nonce prepended
// to the hash input on each non-invertible draw so every returned
// challenge is safe to invert without the caller checking. It returns
// (inverse, value) — swapped relative to natural order, a deliberate
// protocol convention; callers rename the pair back to (value, inverse)
// at the call site.
func (t *Transcript) ChallengeInvertible() (inv fr.Element, val fr.Element, err error) {
	for counter := uint64(0); counter < maxInvertibilityTrials; counter++ {
		d := t.digest(counter)
		val = liftChallenge(d[:challengeBytes])
		if val.IsZero() {
			continue
		}
		inv.Inverse(&val)
		return inv, val, nil
	}
	return fr.Element{}, fr.Element{}, common.ErrNotInvertible
}

// liftChallenge interprets b as a big-endian integer and reduces it into
// F_r via fr.Element.SetBytes, which performs the reduction.
func liftChallenge(b []byte) fr.Element {
	var s fr.Element
	var padded [fr.Bytes]byte
	// b is 16 bytes; place it in the low-order bytes of a field-sized
	// buffer before reducing, since SetBytes treats its input as
	// big-endian and fr.Bytes > len(b).
	copy(padded[len(padded)-len(b):], b)
	s.SetBytes(padded[:])
	return s
}

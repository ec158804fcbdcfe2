package dory

import (
	"github.com/anupsv/dory-zk/pkg/algebra"
)

// Keys holds the commitment key vectors produced by Setup. Gamma1 lives
// in G2 and Gamma2 lives in G1 — the roles are swapped relative to the
// witness (v1, v2), matching the pairing inner product's bilinearity.
type Keys struct {
	Gamma1 algebra.G2Vector
	Gamma2 algebra.G1Vector
}

// BlindingPair is the public (h1, h2) used to randomize every Gt-valued
// commitment. Ht = e(h1, h2) is cached on the SRS.
type BlindingPair struct {
	H1 algebra.G1
	H2 algebra.G2
}

// SRS is the verifier's precomputed cross-product tables, derived once
// from a pair of key vectors and a blinding pair and reused across many
// proofs over witnesses of the same length.
//
// Every table is stored reversed relative to the order Precompute derives
// it in, so index 0 holds the values for the last round of the prover's
// recursion; the verifier reads them from the end, first round first.
type SRS struct {
	Delta1L []algebra.GT
	Delta1R []algebra.GT
	Delta2L []algebra.GT
	Delta2R []algebra.GT
	Chi     []algebra.GT
	Ht      algebra.GT
}

// Commitment is the triple (c, d1, d2) produced by InitCommit and carried
// through Prove/Verify.
type Commitment struct {
	C  algebra.GT
	D1 algebra.GT
	D2 algebra.GT
}

// Blindings are the three scalar blindings for a Commitment.
type Blindings struct {
	Rc  algebra.Scalar
	Rd1 algebra.Scalar
	Rd2 algebra.Scalar
}

// Witness is the pair of vectors the prover holds and never reveals.
type Witness struct {
	V1 algebra.G1Vector
	V2 algebra.G2Vector
}

// RoundRecord is one entry of the proof's round list: the three
// cross-commitments computed on the left half and the three on the right
// half of a recursion round.
type RoundRecord struct {
	D1L algebra.GT
	D2L algebra.GT
	CPlus algebra.GT
	D1R algebra.GT
	D2R algebra.GT
	CMinus algebra.GT
}

// Proof is the complete non-interactive argument: a round list of length
// k = log2(n), plus the terminal Schnorr-style opening.
type Proof struct {
	Rounds []RoundRecord

	E1 algebra.G1
	E2 algebra.G2

	P1 algebra.GT
	P2 algebra.GT
	Q  algebra.GT
	R  algebra.GT

	R1 algebra.Scalar
	R2 algebra.Scalar
	R3 algebra.Scalar
}

package dory

import (
	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
	"github.com/anupsv/dory-zk/pkg/transcript"
)

// Verify checks that proof attests to commitment comm under keys and the
// precomputed srs. It returns (false, nil) for any merely-invalid proof;
// a non-nil error is reserved for malformed inputs caught before any
// pairing work (length/power-of-two preconditions).
func Verify(srs SRS, keys Keys, comm Commitment, proof Proof) (bool, error) {
	if len(keys.Gamma1) != len(keys.Gamma2) {
		return false, common.ErrLengthMismatch
	}
	if !algebra.IsPowerOfTwo(len(keys.Gamma1)) {
		return false, common.ErrNotPowerOfTwo
	}

	k := len(proof.Rounds)
	if len(srs.Chi) != k+1 || len(srs.Delta1L) != k {
		return false, common.ErrSRSMismatch
	}

	cPrime, d1Prime, d2Prime := comm.C, comm.D1, comm.D2
	tr := transcript.New()

	for j := 0; j < k; j++ {
		round := proof.Rounds[k-1-j]

		tr.Reset()
		tr.Absorb(
			algebra.GTBytes(round.D1L), algebra.GTBytes(round.D2L),
			algebra.GTBytes(round.D1R), algebra.GTBytes(round.D2R),
		)
		betaInv, beta, err := tr.ChallengeInvertible()
		if err != nil {
			return false, err
		}

		tr.Reset()
		tr.Absorb(algebra.GTBytes(round.CPlus), algebra.GTBytes(round.CMinus))
		alphaInv, alpha, err := tr.ChallengeInvertible()
		if err != nil {
			return false, err
		}

		// The SRS tables hold the last round at index 0, so round j
		// (counted from the first, largest round) reads index k-1-j, and
		// k-j for chi. Because v1 is mixed with Gamma2 and committed
		// against Gamma1, the d1 update needs <Gamma2_R, Gamma1_L>
		// (Delta2R) and the d2 update needs <Gamma2_L, Gamma1_R> (Delta1R).
		chi := srs.Chi[k-j]
		d1L, d1R := srs.Delta1L[k-1-j], srs.Delta2R[k-1-j]
		d2L, d2R := srs.Delta2L[k-1-j], srs.Delta1R[k-1-j]

		cPrime = algebra.GTAdd(cPrime, chi)
		cPrime = algebra.GTAdd(cPrime, algebra.GTScalarMul(d2Prime, beta))
		cPrime = algebra.GTAdd(cPrime, algebra.GTScalarMul(d1Prime, betaInv))
		cPrime = algebra.GTAdd(cPrime, algebra.GTScalarMul(round.CPlus, alpha))
		cPrime = algebra.GTAdd(cPrime, algebra.GTScalarMul(round.CMinus, alphaInv))

		newD1 := algebra.GTAdd(
			algebra.GTScalarMul(d1L, algebra.Mul(alpha, beta)),
			algebra.GTScalarMul(d1R, beta),
		)
		newD1 = algebra.GTAdd(newD1, algebra.GTScalarMul(round.D1L, alpha))
		newD1 = algebra.GTAdd(newD1, round.D1R)

		newD2 := algebra.GTAdd(
			algebra.GTScalarMul(d2L, algebra.Mul(alphaInv, betaInv)),
			algebra.GTScalarMul(d2R, betaInv),
		)
		newD2 = algebra.GTAdd(newD2, algebra.GTScalarMul(round.D2L, alphaInv))
		newD2 = algebra.GTAdd(newD2, round.D2R)

		d1Prime, d2Prime = newD1, newD2
	}

	finalGamma1 := keys.Gamma1[0]
	finalGamma2 := keys.Gamma2[0]
	chiScalar := srs.Chi[0]

	tr.Reset()
	tr.Absorb(algebra.GTBytes(proof.P1), algebra.GTBytes(proof.P2), algebra.GTBytes(proof.Q), algebra.GTBytes(proof.R))
	chC := tr.Challenge128()

	tr.Reset()
	tr.Absorb(
		algebra.G1Bytes(proof.E1), algebra.G2Bytes(proof.E2),
		algebra.ScalarBytes(proof.R1), algebra.ScalarBytes(proof.R2), algebra.ScalarBytes(proof.R3),
	)
	dInv, d, err := tr.ChallengeInvertible()
	if err != nil {
		return false, err
	}

	e1 := algebra.G1Add(proof.E1, algebra.G1ScalarMul(finalGamma2, d))
	e2 := algebra.G2Add(proof.E2, algebra.G2ScalarMul(finalGamma1, dInv))

	lhs, err := algebra.PairingInnerProduct(algebra.G1Vector{e1}, algebra.G2Vector{e2})
	if err != nil {
		return false, err
	}

	rhs := algebra.GTAdd(chiScalar, proof.R)
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(proof.Q, chC))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(cPrime, algebra.Square(chC)))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(proof.P2, d))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(d2Prime, algebra.Mul(d, chC)))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(proof.P1, dInv))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(d1Prime, algebra.Mul(dInv, chC)))

	blindingTerm := algebra.Add(proof.R3, algebra.Add(algebra.Mul(d, proof.R2), algebra.Mul(dInv, proof.R1)))
	rhs = algebra.GTAdd(rhs, algebra.GTScalarMul(srs.Ht, negate(blindingTerm)))

	return algebra.GTEqual(lhs, rhs), nil
}

func negate(s algebra.Scalar) algebra.Scalar {
	var out algebra.Scalar
	out.Neg(&s)
	return out
}

package dory

import (
	"io"

	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
	"github.com/anupsv/dory-zk/pkg/transcript"
)

// Prove runs the recursive halving reduction followed by the terminal
// Schnorr-style opening, producing a proof that commitment c (carried
// implicitly through rc/rd1/rd2) equals the pairing inner product of
// witness w under keys.
//
// Prove does not modify w, keys or b: each round works on new slices and
// local copies, so the caller may reuse them afterwards (for example,
// passing the same keys to Verify).
func Prove(reader io.Reader, w Witness, keys Keys, b Blindings, ht algebra.GT) (Proof, error) {
	v1, v2 := w.V1, w.V2
	gamma1, gamma2 := keys.Gamma1, keys.Gamma2
	rc, rd1, rd2 := b.Rc, b.Rd1, b.Rd2

	if len(v1) != len(v2) || len(v1) != len(gamma1) || len(v1) != len(gamma2) {
		return Proof{}, common.ErrLengthMismatch
	}
	if !algebra.IsPowerOfTwo(len(v1)) {
		return Proof{}, common.ErrNotPowerOfTwo
	}

	tr := transcript.New()
	var rounds []RoundRecord

	for len(v1) > 1 {
		split := len(v1) / 2
		v1L, v1R := v1[:split], v1[split:]
		v2L, v2R := v2[:split], v2[split:]
		g1L := gamma1[:split]
		g2L := gamma2[:split]

		rd1L, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}
		rd1R, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}
		rd2L, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}
		rd2R, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}

		d1L, err := algebra.PairingInnerProduct(v1L, g1L)
		if err != nil {
			return Proof{}, err
		}
		d1L = algebra.GTAdd(d1L, algebra.GTScalarMul(ht, rd1L))

		d1R, err := algebra.PairingInnerProduct(v1R, g1L)
		if err != nil {
			return Proof{}, err
		}
		d1R = algebra.GTAdd(d1R, algebra.GTScalarMul(ht, rd1R))

		d2L, err := algebra.PairingInnerProduct(g2L, v2L)
		if err != nil {
			return Proof{}, err
		}
		d2L = algebra.GTAdd(d2L, algebra.GTScalarMul(ht, rd2L))

		d2R, err := algebra.PairingInnerProduct(g2L, v2R)
		if err != nil {
			return Proof{}, err
		}
		d2R = algebra.GTAdd(d2R, algebra.GTScalarMul(ht, rd2R))

		tr.Reset()
		tr.Absorb(algebra.GTBytes(d1L), algebra.GTBytes(d2L), algebra.GTBytes(d1R), algebra.GTBytes(d2R))
		betaInv, beta, err := tr.ChallengeInvertible()
		if err != nil {
			return Proof{}, err
		}

		// beta-mix: embed the key into the witness.
		newV1 := make(algebra.G1Vector, len(v1))
		newV2 := make(algebra.G2Vector, len(v2))
		for i := range v1 {
			newV1[i] = algebra.G1Add(v1[i], algebra.G1ScalarMul(gamma2[i], beta))
			newV2[i] = algebra.G2Add(v2[i], algebra.G2ScalarMul(gamma1[i], betaInv))
		}
		v1, v2 = newV1, newV2
		rc = algebra.Add(rc, algebra.Add(algebra.Mul(beta, rd2), algebra.Mul(betaInv, rd1)))

		mixedV1L, mixedV1R := v1[:split], v1[split:]
		mixedV2L, mixedV2R := v2[:split], v2[split:]

		rcPlus, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}
		rcMinus, err := algebra.RandomScalar(reader)
		if err != nil {
			return Proof{}, err
		}

		cPlus, err := algebra.PairingInnerProduct(mixedV1L, mixedV2R)
		if err != nil {
			return Proof{}, err
		}
		cPlus = algebra.GTAdd(cPlus, algebra.GTScalarMul(ht, rcPlus))

		cMinus, err := algebra.PairingInnerProduct(mixedV1R, mixedV2L)
		if err != nil {
			return Proof{}, err
		}
		cMinus = algebra.GTAdd(cMinus, algebra.GTScalarMul(ht, rcMinus))

		tr.Reset()
		tr.Absorb(algebra.GTBytes(cPlus), algebra.GTBytes(cMinus))
		alphaInv, alpha, err := tr.ChallengeInvertible()
		if err != nil {
			return Proof{}, err
		}

		// alpha-fold: contract the halves, halve the keys.
		v1 = algebra.G1Fold2(mixedV1L, mixedV1R, alpha)
		v2 = algebra.G2Fold2(mixedV2L, mixedV2R, alphaInv)
		gamma1, gamma2 = g1L, g2L

		rd1 = algebra.Add(algebra.Mul(alpha, rd1L), rd1R)
		rd2 = algebra.Add(algebra.Mul(alphaInv, rd2L), rd2R)
		rc = algebra.Add(rc, algebra.Add(algebra.Mul(alpha, rcPlus), algebra.Mul(alphaInv, rcMinus)))

		rounds = append(rounds, RoundRecord{
			D1L: d1L, D2L: d2L, CPlus: cPlus,
			D1R: d1R, D2R: d2R, CMinus: cMinus,
		})
	}

	// Terminal Schnorr-style opening over the single remaining elements.
	maskD1, err := algebra.RandomG1Vector(reader, 1)
	if err != nil {
		return Proof{}, err
	}
	maskD2, err := algebra.RandomG2Vector(reader, 1)
	if err != nil {
		return Proof{}, err
	}

	rp1, err := algebra.RandomScalar(reader)
	if err != nil {
		return Proof{}, err
	}
	rp2, err := algebra.RandomScalar(reader)
	if err != nil {
		return Proof{}, err
	}
	rq, err := algebra.RandomScalar(reader)
	if err != nil {
		return Proof{}, err
	}
	rr, err := algebra.RandomScalar(reader)
	if err != nil {
		return Proof{}, err
	}

	p1, err := algebra.PairingInnerProduct(maskD1, gamma1)
	if err != nil {
		return Proof{}, err
	}
	p1 = algebra.GTAdd(p1, algebra.GTScalarMul(ht, rp1))

	p2, err := algebra.PairingInnerProduct(gamma2, maskD2)
	if err != nil {
		return Proof{}, err
	}
	p2 = algebra.GTAdd(p2, algebra.GTScalarMul(ht, rp2))

	qA, err := algebra.PairingInnerProduct(maskD1, v2)
	if err != nil {
		return Proof{}, err
	}
	qB, err := algebra.PairingInnerProduct(v1, maskD2)
	if err != nil {
		return Proof{}, err
	}
	q := algebra.GTAdd(algebra.GTAdd(qA, qB), algebra.GTScalarMul(ht, rq))

	r, err := algebra.PairingInnerProduct(maskD1, maskD2)
	if err != nil {
		return Proof{}, err
	}
	r = algebra.GTAdd(r, algebra.GTScalarMul(ht, rr))

	tr.Reset()
	tr.Absorb(algebra.GTBytes(p1), algebra.GTBytes(p2), algebra.GTBytes(q), algebra.GTBytes(r))
	chC := tr.Challenge128()

	e1 := algebra.G1Add(maskD1[0], algebra.G1ScalarMul(v1[0], chC))
	e2 := algebra.G2Add(maskD2[0], algebra.G2ScalarMul(v2[0], chC))
	r1 := algebra.Add(rp1, algebra.Mul(chC, rd1))
	r2 := algebra.Add(rp2, algebra.Mul(chC, rd2))
	r3 := algebra.Add(rr, algebra.Add(algebra.Mul(chC, rq), algebra.Mul(algebra.Square(chC), rc)))

	// Reverse so index 0 is the last (smallest) round; the verifier
	// traverses the list from the end and so meets the first round first.
	for i, j := 0, len(rounds)-1; i < j; i, j = i+1, j-1 {
		rounds[i], rounds[j] = rounds[j], rounds[i]
	}

	return Proof{
		Rounds: rounds,
		E1:     e1,
		E2:     e2,
		P1:     p1,
		P2:     p2,
		Q:      q,
		R:      r,
		R1:     r1,
		R2:     r2,
		R3:     r3,
	}, nil
}

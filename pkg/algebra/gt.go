package algebra

import (
	"math/big"

	"github.com/anupsv/dory-zk/internal/common"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GT is an element of the pairing target group, the field extension
// Fp12. gnark-crypto represents it multiplicatively; GTAdd and
// GTScalarMul below perform the argument's "addition" and "scalar
// multiplication" on Gt as that group's native multiplication and
// exponentiation. This is not an approximation — Gt really is written
// multiplicatively in the pairing literature, and additive notation is
// purely a convention for treating G1, G2 and Gt uniformly as the
// argument's "vector space".
type GT = bls12381.GT

// GTIdentity returns the multiplicative identity of GT (the argument's
// "zero" element for Gt).
func GTIdentity() GT {
	var one GT
	one.SetOne()
	return one
}

// GTAdd realizes the argument's Gt addition as GT.Mul.
func GTAdd(a, b GT) GT {
	var out GT
	out.Mul(&a, &b)
	return out
}

// GTScalarMul realizes the argument's Gt scalar multiplication as
// GT.Exp.
func GTScalarMul(a GT, s Scalar) GT {
	var sBig big.Int
	s.BigInt(&sBig)
	var out GT
	out.Exp(a, &sBig)
	return out
}

// GTEqual reports whether a and b are the same element of GT.
func GTEqual(a, b GT) bool {
	return a.Equal(&b)
}

// PairingInnerProduct computes sum_i e(a_i, b_i) in GT via gnark-crypto's
// multi-pairing, which computes exactly the product (additively: sum) of
// pairwise pairings in a single Miller loop plus final exponentiation.
// This is the argument's core inner-product operator on (G1, G2) -> Gt.
func PairingInnerProduct(a G1Vector, b G2Vector) (GT, error) {
	if len(a) != len(b) {
		return GT{}, common.ErrLengthMismatch
	}
	if len(a) == 0 {
		return GTIdentity(), nil
	}
	return bls12381.Pair(a, b)
}

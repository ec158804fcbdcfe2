package algebra

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1 is an affine point on the first source group.
type G1 = bls12381.G1Affine

// G2 is an affine point on the second source group.
type G2 = bls12381.G2Affine

// Generators returns the canonical BLS12-381 generators for G1 and G2.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}

// G1Vector is an ordered list of G1 points, the prover's witness for the
// first source group.
type G1Vector []G1

// G2Vector is an ordered list of G2 points, the prover's witness for the
// second source group.
type G2Vector []G2

// RandomG1Vector draws n points by scalar-multiplying the G1 generator by
// n independent random scalars. Used by the SRS generator and by tests
// that need a concrete witness without committing to any particular
// message encoding.
func RandomG1Vector(reader io.Reader, n int) (G1Vector, error) {
	scalars, err := RandomScalars(reader, n)
	if err != nil {
		return nil, err
	}
	g1, _ := Generators()
	out := make(G1Vector, n)
	for i, s := range scalars {
		out[i] = G1ScalarMul(g1, s)
	}
	return out, nil
}

// RandomG2Vector draws n points by scalar-multiplying the G2 generator by
// n independent random scalars.
func RandomG2Vector(reader io.Reader, n int) (G2Vector, error) {
	scalars, err := RandomScalars(reader, n)
	if err != nil {
		return nil, err
	}
	_, g2 := Generators()
	out := make(G2Vector, n)
	for i, s := range scalars {
		out[i] = G2ScalarMul(g2, s)
	}
	return out, nil
}

// G1Add returns a + b in G1.
func G1Add(a, b G1) G1 {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out G1
	out.FromJacobian(&aj)
	return out
}

// G1ScalarMul returns p * s in G1.
func G1ScalarMul(p G1, s Scalar) G1 {
	var pj bls12381.G1Jac
	pj.FromAffine(&p)
	var sBig big.Int
	s.BigInt(&sBig)
	pj.ScalarMultiplication(&pj, &sBig)
	var out G1
	out.FromJacobian(&pj)
	return out
}

// G2Add returns a + b in G2.
func G2Add(a, b G2) G2 {
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out G2
	out.FromJacobian(&aj)
	return out
}

// G2ScalarMul returns p * s in G2.
func G2ScalarMul(p G2, s Scalar) G2 {
	var pj bls12381.G2Jac
	pj.FromAffine(&p)
	var sBig big.Int
	s.BigInt(&sBig)
	pj.ScalarMultiplication(&pj, &sBig)
	var out G2
	out.FromJacobian(&pj)
	return out
}

package algebra

import (
	"io"

	"github.com/anupsv/dory-zk/pkg/utils"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the BLS12-381 scalar field F_r.
type Scalar = fr.Element

// ScalarOne returns the multiplicative identity of F_r.
func ScalarOne() Scalar {
	var s Scalar
	s.SetOne()
	return s
}

// RandomScalar draws a uniformly random, nonzero scalar from reader. A nil
// reader defaults to crypto/rand.
func RandomScalar(reader io.Reader) (Scalar, error) {
	return utils.RandomScalar(reader)
}

// RandomScalars draws n independent uniformly random, nonzero scalars.
func RandomScalars(reader io.Reader, n int) ([]Scalar, error) {
	return utils.RandomScalars(reader, n)
}

// Inverse returns the multiplicative inverse of s. The caller must ensure
// s is nonzero; inverting zero returns zero, which the transcript's
// rejection-sampling loop treats as a failed draw.
func Inverse(s Scalar) Scalar {
	var out Scalar
	out.Inverse(&s)
	return out
}

// Add returns a + b in F_r.
func Add(a, b Scalar) Scalar {
	var out Scalar
	out.Add(&a, &b)
	return out
}

// Sub returns a - b in F_r.
func Sub(a, b Scalar) Scalar {
	var out Scalar
	out.Sub(&a, &b)
	return out
}

// Mul returns a * b in F_r.
func Mul(a, b Scalar) Scalar {
	var out Scalar
	out.Mul(&a, &b)
	return out
}

// Square returns a * a in F_r.
func Square(a Scalar) Scalar {
	var out Scalar
	out.Square(&a)
	return out
}

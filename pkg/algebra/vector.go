package algebra

import (
	"github.com/anupsv/dory-zk/internal/pool"
)

// IsPowerOfTwo reports whether n is a power of two. n == 0 is not.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// G1Fold2 contracts two equal-length G1 half-vectors into one:
// out[i] = left[i]*coef + right[i]. This is the alpha-fold step applied
// to the v1 witness half (coef = alpha).
func G1Fold2(left, right G1Vector, coef Scalar) G1Vector {
	out := make(G1Vector, len(left))
	pool.ParallelFor(len(left), func(i int) {
		out[i] = G1Add(G1ScalarMul(left[i], coef), right[i])
	})
	return out
}

// G2Fold2 contracts two equal-length G2 half-vectors into one:
// out[i] = left[i]*coef + right[i]. This is the alpha-fold step applied
// to the v2 witness half (coef = alpha^-1).
func G2Fold2(left, right G2Vector, coef Scalar) G2Vector {
	out := make(G2Vector, len(left))
	pool.ParallelFor(len(left), func(i int) {
		out[i] = G2Add(G2ScalarMul(left[i], coef), right[i])
	})
	return out
}

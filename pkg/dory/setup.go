package dory

import (
	"io"

	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
)

// Setup draws Gamma1 (length n, in G2) and Gamma2 (length n, in G1)
// uniformly at random. n must be a power of two. A nil reader defaults to
// crypto/rand; benchmarks and tests pass a seeded reader for
// reproducibility.
func Setup(reader io.Reader, n int) (Keys, error) {
	if !algebra.IsPowerOfTwo(n) {
		return Keys{}, common.ErrNotPowerOfTwo
	}

	gamma1, err := algebra.RandomG2Vector(reader, n)
	if err != nil {
		return Keys{}, err
	}
	gamma2, err := algebra.RandomG1Vector(reader, n)
	if err != nil {
		return Keys{}, err
	}

	return Keys{Gamma1: gamma1, Gamma2: gamma2}, nil
}

package dory

import (
	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
)

// Precompute derives the verifier's SRS tables from the commitment keys
// and the blinding pair. Starting from the full-length keys, each round
// records chi (the self-pairing of the round's keys) and the four
// cross-products Delta1L/Delta1R/Delta2R (Delta2L coincides with
// Delta1L), then carries the left halves forward. After the loop every
// table is reversed so index 0 is the last round's values; Verify reads
// them from the end, first round first.
func Precompute(keys Keys, blinding BlindingPair) (SRS, error) {
	gamma1, gamma2 := keys.Gamma1, keys.Gamma2
	if len(gamma1) != len(gamma2) {
		return SRS{}, common.ErrLengthMismatch
	}
	if !algebra.IsPowerOfTwo(len(gamma1)) {
		return SRS{}, common.ErrNotPowerOfTwo
	}

	var chi, delta1L, delta1R, delta2R []algebra.GT

	for len(gamma1) >= 1 {
		c, err := algebra.PairingInnerProduct(gamma2, gamma1)
		if err != nil {
			return SRS{}, err
		}
		chi = append(chi, c)

		if len(gamma1) == 1 {
			break
		}

		split := len(gamma1) / 2
		g1L, g1R := gamma1[:split], gamma1[split:]
		g2L, g2R := gamma2[:split], gamma2[split:]

		d1L, err := algebra.PairingInnerProduct(g2L, g1L)
		if err != nil {
			return SRS{}, err
		}
		d1R, err := algebra.PairingInnerProduct(g2L, g1R)
		if err != nil {
			return SRS{}, err
		}
		d2R, err := algebra.PairingInnerProduct(g2R, g1L)
		if err != nil {
			return SRS{}, err
		}

		delta1L = append(delta1L, d1L)
		delta1R = append(delta1R, d1R)
		delta2R = append(delta2R, d2R)

		gamma1, gamma2 = g1L, g2L
	}

	delta2L := make([]algebra.GT, len(delta1L))
	copy(delta2L, delta1L)

	reverseGT(chi)
	reverseGT(delta1L)
	reverseGT(delta1R)
	reverseGT(delta2L)
	reverseGT(delta2R)

	ht, err := blinding.Ht()
	if err != nil {
		return SRS{}, err
	}

	return SRS{
		Delta1L: delta1L,
		Delta1R: delta1R,
		Delta2L: delta2L,
		Delta2R: delta2R,
		Chi:     chi,
		Ht:      ht,
	}, nil
}

func reverseGT(s []algebra.GT) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

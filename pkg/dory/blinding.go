package dory

import (
	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// NothingUpMySleeveBlinding derives (h1, h2) by hashing fixed, public
// domain-separation strings directly to G1 and G2, rather than sampling
// them with the caller's randomness, which would give no domain
// separation from (Gamma1, Gamma2); tying them to a public string instead
// means no party, including whoever ran Setup, can know a discrete-log
// relation between h1, h2 and the commitment keys.
func NothingUpMySleeveBlinding() (BlindingPair, error) {
	h1, err := bls12381.HashToG1([]byte("dory blinding generator h1"), []byte(common.DSTBlindingG1))
	if err != nil {
		return BlindingPair{}, err
	}
	h2, err := bls12381.HashToG2([]byte("dory blinding generator h2"), []byte(common.DSTBlindingG2))
	if err != nil {
		return BlindingPair{}, err
	}
	return BlindingPair{H1: h1, H2: h2}, nil
}

// Ht returns e(h1, h2), the blinding pairing value cached on the SRS.
func (b BlindingPair) Ht() (algebra.GT, error) {
	return algebra.PairingInnerProduct(algebra.G1Vector{b.H1}, algebra.G2Vector{b.H2})
}

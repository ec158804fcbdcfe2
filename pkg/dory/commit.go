package dory

import (
	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
)

// InitCommit builds the three initial commitments:
//
//	c  = <v1, v2>  + rc  * ht
//	d1 = <v1, Gamma1> + rd1 * ht
//	d2 = <Gamma2, v2> + rd2 * ht
func InitCommit(w Witness, keys Keys, b Blindings, ht algebra.GT) (Commitment, error) {
	if len(w.V1) != len(w.V2) || len(w.V1) != len(keys.Gamma1) || len(w.V1) != len(keys.Gamma2) {
		return Commitment{}, common.ErrLengthMismatch
	}

	c, err := algebra.PairingInnerProduct(w.V1, w.V2)
	if err != nil {
		return Commitment{}, err
	}
	c = algebra.GTAdd(c, algebra.GTScalarMul(ht, b.Rc))

	d1, err := algebra.PairingInnerProduct(w.V1, keys.Gamma1)
	if err != nil {
		return Commitment{}, err
	}
	d1 = algebra.GTAdd(d1, algebra.GTScalarMul(ht, b.Rd1))

	d2, err := algebra.PairingInnerProduct(keys.Gamma2, w.V2)
	if err != nil {
		return Commitment{}, err
	}
	d2 = algebra.GTAdd(d2, algebra.GTScalarMul(ht, b.Rd2))

	return Commitment{C: c, D1: d1, D2: d2}, nil
}

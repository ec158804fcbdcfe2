// Package algebra instantiates the abstract field and group interfaces
// the DORY argument is built over with BLS12-381 from
// github.com/consensys/gnark-crypto.
//
// Scalar wraps the scalar field fr.Element; G1 and G2 wrap the two source
// groups; GT wraps the target group (an Fp12 element produced by a
// pairing). The argument's "addition" on Gt and "scalar multiplication"
// on Gt are realized as the underlying multiplicative group operation and
// exponentiation respectively: Gt is additively written in the pairing
// literature but gnark-crypto represents it, correctly, as the
// multiplicative group of the extension field. GTAdd and GTScalarMul
// below make that mapping explicit at every call site instead of leaving
// it implicit in naming.
//
// PairingInnerProduct computes sum_i e(a_i, b_i) in one call via
// gnark-crypto's multi-pairing, which is exactly the inner-product
// operator the argument recurses on.
package algebra

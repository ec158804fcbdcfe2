// Package dory implements the zero-knowledge pairing-inner-product
// argument: setup, precompute, commit, prove and verify over BLS12-381,
// following the recursive halving protocol of DORY.
//
// A proof shows that a committed value c equals the pairing inner
// product of two committed vectors v1, v2 of matching length n = 2^k,
// without revealing either vector. Proving is linear in n; a proof is
// O(log n) group elements; verification, given the precomputed SRS
// tables, is O(log n).
package dory

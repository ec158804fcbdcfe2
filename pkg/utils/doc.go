// Package utils provides small utility helpers shared across the DORY
// implementation.
//
// It currently holds randomness helpers: uniform scalar sampling with
// reader injection, used both for production randomness (crypto/rand) and
// for deterministic, seeded runs in benchmarks and tests.
package utils

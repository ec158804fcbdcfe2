// Package pool provides index-parallel fan-out for per-round vector work.
//
// ParallelFor splits a contiguous index range across GOMAXPROCS goroutines
// for data-parallel work where no lane observes another lane's state. Its
// only callers are pkg/algebra's G1Fold2/G2Fold2 (the alpha-fold).
//
// This is an internal package not intended for direct use by applications.
package pool

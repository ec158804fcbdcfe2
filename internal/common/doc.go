// Package common provides shared error definitions used throughout the
// DORY implementation.
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public pkg/algebra, pkg/transcript
// and pkg/dory packages.
package common

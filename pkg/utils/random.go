package utils

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// RandomScalar draws a uniformly random, nonzero element of the BLS12-381
// scalar field from reader. A nil reader defaults to crypto/rand, so
// production call sites need not think about the source; benchmarks and
// tests instead pass a seeded reader (see SeededReader) to get
// reproducible runs.
func RandomScalar(reader io.Reader) (fr.Element, error) {
	if reader == nil {
		reader = rand.Reader
	}

	var s fr.Element
	buf := make([]byte, fr.Bytes)
	for {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return fr.Element{}, fmt.Errorf("read random bytes: %w", err)
		}
		s.SetBytes(buf)
		if !s.IsZero() {
			return s, nil
		}
	}
}

// RandomScalars draws n independent uniformly random, nonzero scalars.
func RandomScalars(reader io.Reader, n int) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := range out {
		s, err := RandomScalar(reader)
		if err != nil {
			return nil, fmt.Errorf("sample scalar %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// SeededReader wraps a math/rand.Rand (or any deterministic byte source)
// so it satisfies io.Reader, letting RandomScalar produce a reproducible
// sequence from a fixed seed.
type SeededReader struct {
	src io.Reader
}

// NewSeededReader adapts src into a SeededReader.
func NewSeededReader(src io.Reader) *SeededReader {
	return &SeededReader{src: src}
}

func (r *SeededReader) Read(p []byte) (int, error) {
	return r.src.Read(p)
}

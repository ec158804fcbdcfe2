package dory

import (
	"encoding/binary"

	"github.com/anupsv/dory-zk/internal/common"
	"github.com/anupsv/dory-zk/pkg/algebra"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Canonical encodings: every group/field element is fixed width
// (gnark-crypto's compressed point and field-element forms), so vectors
// are encoded as a 4-byte big-endian count followed by that many
// fixed-width elements, with no internal length tags.

func putUint32(buf []byte, n int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	return append(buf, b[:]...)
}

func readUint32(b []byte) (int, []byte, error) {
	if len(b) < 4 {
		return 0, nil, common.ErrTruncatedEncoding
	}
	return int(binary.BigEndian.Uint32(b[:4])), b[4:], nil
}

func readG1(b []byte) (algebra.G1, []byte, error) {
	var p bls12381.G1Affine
	n := len(p.Bytes())
	if len(b) < n {
		return algebra.G1{}, nil, common.ErrTruncatedEncoding
	}
	var arr [bls12381.SizeOfG1AffineCompressed]byte
	copy(arr[:], b[:n])
	if _, err := p.SetBytes(arr[:]); err != nil {
		return algebra.G1{}, nil, err
	}
	return p, b[n:], nil
}

func readG2(b []byte) (algebra.G2, []byte, error) {
	var p bls12381.G2Affine
	n := len(p.Bytes())
	if len(b) < n {
		return algebra.G2{}, nil, common.ErrTruncatedEncoding
	}
	var arr [bls12381.SizeOfG2AffineCompressed]byte
	copy(arr[:], b[:n])
	if _, err := p.SetBytes(arr[:]); err != nil {
		return algebra.G2{}, nil, err
	}
	return p, b[n:], nil
}

func readGT(b []byte) (algebra.GT, []byte, error) {
	var g algebra.GT
	n := len(g.Bytes())
	if len(b) < n {
		return algebra.GT{}, nil, common.ErrTruncatedEncoding
	}
	var arr [bls12381.SizeOfGT]byte
	copy(arr[:], b[:n])
	if err := g.SetBytes(arr[:]); err != nil {
		return algebra.GT{}, nil, err
	}
	return g, b[n:], nil
}

func readScalar(b []byte) (algebra.Scalar, []byte, error) {
	if len(b) < fr.Bytes {
		return algebra.Scalar{}, nil, common.ErrTruncatedEncoding
	}
	var s fr.Element
	s.SetBytes(b[:fr.Bytes])
	return s, b[fr.Bytes:], nil
}

// Bytes returns the canonical encoding of a proof.
func (p Proof) Bytes() []byte {
	var out []byte
	out = putUint32(out, len(p.Rounds))
	for _, r := range p.Rounds {
		out = append(out, algebra.GTBytes(r.D1L)...)
		out = append(out, algebra.GTBytes(r.D2L)...)
		out = append(out, algebra.GTBytes(r.CPlus)...)
		out = append(out, algebra.GTBytes(r.D1R)...)
		out = append(out, algebra.GTBytes(r.D2R)...)
		out = append(out, algebra.GTBytes(r.CMinus)...)
	}
	out = append(out, algebra.G1Bytes(p.E1)...)
	out = append(out, algebra.G2Bytes(p.E2)...)
	out = append(out, algebra.GTBytes(p.P1)...)
	out = append(out, algebra.GTBytes(p.P2)...)
	out = append(out, algebra.GTBytes(p.Q)...)
	out = append(out, algebra.GTBytes(p.R)...)
	out = append(out, algebra.ScalarBytes(p.R1)...)
	out = append(out, algebra.ScalarBytes(p.R2)...)
	out = append(out, algebra.ScalarBytes(p.R3)...)
	return out
}

// DecodeProof parses a proof from its canonical encoding.
func DecodeProof(b []byte) (Proof, error) {
	count, b, err := readUint32(b)
	if err != nil {
		return Proof{}, err
	}

	rounds := make([]RoundRecord, count)
	for i := range rounds {
		var r RoundRecord
		if r.D1L, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		if r.D2L, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		if r.CPlus, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		if r.D1R, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		if r.D2R, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		if r.CMinus, b, err = readGT(b); err != nil {
			return Proof{}, err
		}
		rounds[i] = r
	}

	var p Proof
	p.Rounds = rounds
	if p.E1, b, err = readG1(b); err != nil {
		return Proof{}, err
	}
	if p.E2, b, err = readG2(b); err != nil {
		return Proof{}, err
	}
	if p.P1, b, err = readGT(b); err != nil {
		return Proof{}, err
	}
	if p.P2, b, err = readGT(b); err != nil {
		return Proof{}, err
	}
	if p.Q, b, err = readGT(b); err != nil {
		return Proof{}, err
	}
	if p.R, b, err = readGT(b); err != nil {
		return Proof{}, err
	}
	if p.R1, b, err = readScalar(b); err != nil {
		return Proof{}, err
	}
	if p.R2, b, err = readScalar(b); err != nil {
		return Proof{}, err
	}
	if p.R3, _, err = readScalar(b); err != nil {
		return Proof{}, err
	}
	return p, nil
}

// Bytes returns the canonical encoding of an SRS.
func (s SRS) Bytes() []byte {
	var out []byte
	writeGTList := func(list []algebra.GT) {
		out = putUint32(out, len(list))
		for _, g := range list {
			out = append(out, algebra.GTBytes(g)...)
		}
	}
	writeGTList(s.Delta1L)
	writeGTList(s.Delta1R)
	writeGTList(s.Delta2L)
	writeGTList(s.Delta2R)
	writeGTList(s.Chi)
	out = append(out, algebra.GTBytes(s.Ht)...)
	return out
}

// DecodeSRS parses an SRS from its canonical encoding.
func DecodeSRS(b []byte) (SRS, error) {
	readGTList := func() ([]algebra.GT, error) {
		count, rest, err := readUint32(b)
		if err != nil {
			return nil, err
		}
		b = rest
		list := make([]algebra.GT, count)
		for i := range list {
			var g algebra.GT
			var berr error
			g, b, berr = readGT(b)
			if berr != nil {
				return nil, berr
			}
			list[i] = g
		}
		return list, nil
	}

	var s SRS
	var err error
	if s.Delta1L, err = readGTList(); err != nil {
		return SRS{}, err
	}
	if s.Delta1R, err = readGTList(); err != nil {
		return SRS{}, err
	}
	if s.Delta2L, err = readGTList(); err != nil {
		return SRS{}, err
	}
	if s.Delta2R, err = readGTList(); err != nil {
		return SRS{}, err
	}
	if s.Chi, err = readGTList(); err != nil {
		return SRS{}, err
	}
	if s.Ht, b, err = readGT(b); err != nil {
		return SRS{}, err
	}
	_ = b
	return s, nil
}

// Bytes returns the canonical encoding of a key pair.
func (k Keys) Bytes() []byte {
	var out []byte
	out = putUint32(out, len(k.Gamma1))
	for _, g := range k.Gamma1 {
		out = append(out, algebra.G2Bytes(g)...)
	}
	for _, g := range k.Gamma2 {
		out = append(out, algebra.G1Bytes(g)...)
	}
	return out
}

// DecodeKeys parses a key pair from its canonical encoding.
func DecodeKeys(b []byte) (Keys, error) {
	n, b, err := readUint32(b)
	if err != nil {
		return Keys{}, err
	}

	gamma1 := make(algebra.G2Vector, n)
	for i := range gamma1 {
		if gamma1[i], b, err = readG2(b); err != nil {
			return Keys{}, err
		}
	}
	gamma2 := make(algebra.G1Vector, n)
	for i := range gamma2 {
		if gamma2[i], b, err = readG1(b); err != nil {
			return Keys{}, err
		}
	}
	return Keys{Gamma1: gamma1, Gamma2: gamma2}, nil
}

// Bundle pairs a Keys with its derived SRS for file persistence, letting
// cmd/dorysetup hand cmd/dorybench everything it needs to reuse a
// generated setup across runs.
type Bundle struct {
	Keys Keys
	SRS  SRS
}

// Bytes returns the canonical encoding of a bundle: the key pair followed
// by the SRS.
func (bd Bundle) Bytes() []byte {
	out := bd.Keys.Bytes()
	return append(out, bd.SRS.Bytes()...)
}

// DecodeBundle parses a bundle from its canonical encoding.
func DecodeBundle(b []byte) (Bundle, error) {
	n, rest, err := readUint32(b)
	if err != nil {
		return Bundle{}, err
	}
	keysLen := 4 + n*(bls12381.SizeOfG2AffineCompressed+bls12381.SizeOfG1AffineCompressed)
	_ = rest

	keys, err := DecodeKeys(b[:keysLen])
	if err != nil {
		return Bundle{}, err
	}
	srs, err := DecodeSRS(b[keysLen:])
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{Keys: keys, SRS: srs}, nil
}

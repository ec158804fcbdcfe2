package algebra

// Canonical byte encodings for the element types, used both for proof
// serialization and as the transcript's hash input. G1, G2 and GT use the
// fixed-width Bytes() form from gnark-crypto (compressed for the points);
// Scalar uses its Bytes() form.

// G1Bytes returns the canonical compressed encoding of p.
func G1Bytes(p G1) []byte {
	b := p.Bytes()
	return b[:]
}

// G2Bytes returns the canonical compressed encoding of p.
func G2Bytes(p G2) []byte {
	b := p.Bytes()
	return b[:]
}

// GTBytes returns the canonical encoding of an element of GT.
func GTBytes(g GT) []byte {
	b := g.Bytes()
	return b[:]
}

// ScalarBytes returns the canonical big-endian encoding of s.
func ScalarBytes(s Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

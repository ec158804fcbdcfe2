package algebra

import (
	"crypto/rand"
	"testing"
)

func TestPairingInnerProductLengthMismatch(t *testing.T) {
	v1, err := RandomG1Vector(rand.Reader, 2)
	if err != nil {
		t.Fatalf("RandomG1Vector: %v", err)
	}
	v2, err := RandomG2Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG2Vector: %v", err)
	}
	if _, err := PairingInnerProduct(v1, v2); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestPairingInnerProductEmpty(t *testing.T) {
	got, err := PairingInnerProduct(nil, nil)
	if err != nil {
		t.Fatalf("PairingInnerProduct: %v", err)
	}
	if !GTEqual(got, GTIdentity()) {
		t.Errorf("empty inner product should be the GT identity")
	}
}

func TestPairingInnerProductBilinear(t *testing.T) {
	g1, g2 := Generators()
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	b, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	lhs, err := PairingInnerProduct(G1Vector{G1ScalarMul(g1, a)}, G2Vector{G2ScalarMul(g2, b)})
	if err != nil {
		t.Fatalf("PairingInnerProduct: %v", err)
	}

	base, err := PairingInnerProduct(G1Vector{g1}, G2Vector{g2})
	if err != nil {
		t.Fatalf("PairingInnerProduct: %v", err)
	}
	rhs := GTScalarMul(base, Mul(a, b))

	if !GTEqual(lhs, rhs) {
		t.Errorf("e(a*G1,b*G2) != e(G1,G2)^(a*b)")
	}
}

func TestPairingInnerProductAdditive(t *testing.T) {
	v1, err := RandomG1Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG1Vector: %v", err)
	}
	v2, err := RandomG2Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG2Vector: %v", err)
	}

	whole, err := PairingInnerProduct(v1, v2)
	if err != nil {
		t.Fatalf("PairingInnerProduct: %v", err)
	}

	acc := GTIdentity()
	for i := range v1 {
		term, err := PairingInnerProduct(v1[i:i+1], v2[i:i+1])
		if err != nil {
			t.Fatalf("PairingInnerProduct: %v", err)
		}
		acc = GTAdd(acc, term)
	}

	if !GTEqual(whole, acc) {
		t.Errorf("multi-pairing does not equal the sum of its terms")
	}
}

func TestGTBytesRoundTrip(t *testing.T) {
	g1, g2 := Generators()
	val, err := PairingInnerProduct(G1Vector{g1}, G2Vector{g2})
	if err != nil {
		t.Fatalf("PairingInnerProduct: %v", err)
	}
	enc := GTBytes(val)
	var out GT
	if err := out.SetBytes(enc); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	if !GTEqual(val, out) {
		t.Errorf("round trip mismatch")
	}
}

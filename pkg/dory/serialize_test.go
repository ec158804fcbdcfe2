package dory

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/anupsv/dory-zk/pkg/algebra"
)

func TestProofBytesRoundTrip(t *testing.T) {
	keys, srs, w, b, _ := setupRound(t, 8)
	proof, err := Prove(rand.Reader, w, keys, b, srs.Ht)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	enc := proof.Bytes()
	decoded, err := DecodeProof(enc)
	if err != nil {
		t.Fatalf("DecodeProof: %v", err)
	}

	if !bytes.Equal(enc, decoded.Bytes()) {
		t.Errorf("re-encoding a decoded proof should reproduce the original bytes")
	}
	if len(decoded.Rounds) != len(proof.Rounds) {
		t.Errorf("got %d rounds, want %d", len(decoded.Rounds), len(proof.Rounds))
	}
	if !decoded.R3.Equal(&proof.R3) {
		t.Errorf("R3 did not survive round trip")
	}
}

func TestProofBytesTruncated(t *testing.T) {
	keys, srs, w, b, _ := setupRound(t, 4)
	proof, err := Prove(rand.Reader, w, keys, b, srs.Ht)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	enc := proof.Bytes()
	if _, err := DecodeProof(enc[:len(enc)-1]); err == nil {
		t.Fatalf("DecodeProof accepted a truncated encoding")
	}
}

func TestSRSBytesRoundTrip(t *testing.T) {
	keys, err := Setup(rand.Reader, 8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	blinding, err := NothingUpMySleeveBlinding()
	if err != nil {
		t.Fatalf("NothingUpMySleeveBlinding: %v", err)
	}
	srs, err := Precompute(keys, blinding)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	enc := srs.Bytes()
	decoded, err := DecodeSRS(enc)
	if err != nil {
		t.Fatalf("DecodeSRS: %v", err)
	}
	if len(decoded.Chi) != len(srs.Chi) {
		t.Errorf("got %d chi entries, want %d", len(decoded.Chi), len(srs.Chi))
	}
	if !algebra.GTEqual(decoded.Ht, srs.Ht) {
		t.Errorf("Ht did not survive round trip")
	}
}

func TestKeysBytesRoundTrip(t *testing.T) {
	keys, err := Setup(rand.Reader, 8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	enc := keys.Bytes()
	decoded, err := DecodeKeys(enc)
	if err != nil {
		t.Fatalf("DecodeKeys: %v", err)
	}
	if len(decoded.Gamma1) != len(keys.Gamma1) || len(decoded.Gamma2) != len(keys.Gamma2) {
		t.Fatalf("length mismatch after round trip")
	}
	for i := range keys.Gamma1 {
		g1 := keys.Gamma1[i]
		d1 := decoded.Gamma1[i]
		if !d1.Equal(&g1) {
			t.Errorf("Gamma1[%d] did not survive round trip", i)
		}
	}
}

func TestBundleBytesRoundTrip(t *testing.T) {
	keys, err := Setup(rand.Reader, 4)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	blinding, err := NothingUpMySleeveBlinding()
	if err != nil {
		t.Fatalf("NothingUpMySleeveBlinding: %v", err)
	}
	srs, err := Precompute(keys, blinding)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	bundle := Bundle{Keys: keys, SRS: srs}
	enc := bundle.Bytes()

	decoded, err := DecodeBundle(enc)
	if err != nil {
		t.Fatalf("DecodeBundle: %v", err)
	}
	if len(decoded.Keys.Gamma1) != len(keys.Gamma1) {
		t.Fatalf("Keys length mismatch after round trip")
	}
	if len(decoded.SRS.Chi) != len(srs.Chi) {
		t.Fatalf("SRS length mismatch after round trip")
	}

	// A bundle decoded from disk must support the same proof/verify cycle
	// as the in-process values it was built from.
	v1, err := algebra.RandomG1Vector(rand.Reader, 4)
	if err != nil {
		t.Fatalf("RandomG1Vector: %v", err)
	}
	v2, err := algebra.RandomG2Vector(rand.Reader, 4)
	if err != nil {
		t.Fatalf("RandomG2Vector: %v", err)
	}
	w := Witness{V1: v1, V2: v2}
	b := Blindings{}
	if b.Rc, err = algebra.RandomScalar(rand.Reader); err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	if b.Rd1, err = algebra.RandomScalar(rand.Reader); err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	if b.Rd2, err = algebra.RandomScalar(rand.Reader); err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	comm, err := InitCommit(w, decoded.Keys, b, decoded.SRS.Ht)
	if err != nil {
		t.Fatalf("InitCommit: %v", err)
	}
	proof, err := Prove(rand.Reader, w, decoded.Keys, b, decoded.SRS.Ht)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	ok, err := Verify(decoded.SRS, decoded.Keys, comm, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("Verify rejected a proof built from a decoded bundle")
	}
}

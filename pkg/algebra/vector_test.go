package algebra

import (
	"crypto/rand"
	"testing"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{16, true},
		{17, false},
		{-4, false},
	}
	for _, c := range cases {
		if got := IsPowerOfTwo(c.n); got != c.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestG1Fold2(t *testing.T) {
	left, err := RandomG1Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG1Vector: %v", err)
	}
	right, err := RandomG1Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG1Vector: %v", err)
	}
	coef, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	folded := G1Fold2(left, right, coef)
	for i := range left {
		want := G1Add(G1ScalarMul(left[i], coef), right[i])
		if !folded[i].Equal(&want) {
			t.Errorf("index %d: fold mismatch", i)
		}
	}
}

func TestG2Fold2(t *testing.T) {
	left, err := RandomG2Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG2Vector: %v", err)
	}
	right, err := RandomG2Vector(rand.Reader, 3)
	if err != nil {
		t.Fatalf("RandomG2Vector: %v", err)
	}
	coef, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	folded := G2Fold2(left, right, coef)
	for i := range left {
		want := G2Add(G2ScalarMul(left[i], coef), right[i])
		if !folded[i].Equal(&want) {
			t.Errorf("index %d: fold mismatch", i)
		}
	}
}

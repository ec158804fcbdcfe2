// Command dorysetup runs Setup and Precompute once and writes the
// resulting SRS to a file in dory's canonical encoding, so it can be
// reused across many dorybench invocations over witnesses of the same
// length (exercising the "SRS reuse" property outside of tests).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/anupsv/dory-zk/pkg/dory"
	"github.com/anupsv/dory-zk/pkg/utils"
)

func main() {
	n := flag.Int("n", 16, "vector length, must be a power of two")
	seed := flag.Uint64("seed", 0, "deterministic RNG seed")
	out := flag.String("out", "dory.srs", "output file for the encoded SRS")
	flag.Parse()

	if err := run(*n, *seed, *out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(n int, seed uint64, outPath string) error {
	reader := utils.NewSeededReader(rand.New(rand.NewSource(int64(seed))))

	keys, err := dory.Setup(reader, n)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	blinding, err := dory.NothingUpMySleeveBlinding()
	if err != nil {
		return fmt.Errorf("derive blinding pair: %w", err)
	}

	srs, err := dory.Precompute(keys, blinding)
	if err != nil {
		return fmt.Errorf("precompute: %w", err)
	}

	bundle := dory.Bundle{Keys: keys, SRS: srs}
	if err := os.WriteFile(outPath, bundle.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("wrote SRS for n=%d to %s\n", n, outPath)
	return nil
}

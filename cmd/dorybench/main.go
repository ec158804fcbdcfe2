// Command dorybench runs one (or, with -sweep, several) prove/verify
// cycles of the pairing-product argument and reports timing.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/anupsv/dory-zk/pkg/algebra"
	"github.com/anupsv/dory-zk/pkg/dory"
	"github.com/anupsv/dory-zk/pkg/utils"
	"github.com/wcharczuk/go-chart/v2"
)

func main() {
	n := flag.Int("n", 16, "vector length, must be a power of two")
	seed := flag.Uint64("seed", 0, "deterministic RNG seed")
	sweep := flag.Bool("sweep", false, "sweep n = 2^1..2^6 and render dorybench.png instead of a single run")
	out := flag.String("out", "dorybench.png", "output path for -sweep's chart")
	srsPath := flag.String("srs", "", "reuse an SRS bundle written by dorysetup instead of running Setup/Precompute")
	flag.Parse()

	if *sweep {
		if err := runSweep(*seed, *out); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	provingMS, verifyMS, ok, err := runOnce(*seed, *n, *srsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("proving time: %d ms\n", provingMS)
	fmt.Printf("verification time: %d ms\n", verifyMS)
	fmt.Printf("result: %v\n", ok)

	if !ok {
		os.Exit(1)
	}
}

func runOnce(seed uint64, n int, srsPath string) (provingMS, verifyMS int64, result bool, err error) {
	reader := utils.NewSeededReader(rand.New(rand.NewSource(int64(seed))))

	var keys dory.Keys
	var srs dory.SRS

	if srsPath != "" {
		raw, readErr := os.ReadFile(srsPath)
		if readErr != nil {
			return 0, 0, false, fmt.Errorf("read %s: %w", srsPath, readErr)
		}
		bundle, decodeErr := dory.DecodeBundle(raw)
		if decodeErr != nil {
			return 0, 0, false, fmt.Errorf("decode %s: %w", srsPath, decodeErr)
		}
		if len(bundle.Keys.Gamma1) != n {
			return 0, 0, false, fmt.Errorf("%s holds an SRS for n=%d, want n=%d", srsPath, len(bundle.Keys.Gamma1), n)
		}
		keys, srs = bundle.Keys, bundle.SRS
	} else {
		keys, err = dory.Setup(reader, n)
		if err != nil {
			return 0, 0, false, err
		}

		var blinding dory.BlindingPair
		blinding, err = dory.NothingUpMySleeveBlinding()
		if err != nil {
			return 0, 0, false, err
		}
		srs, err = dory.Precompute(keys, blinding)
		if err != nil {
			return 0, 0, false, err
		}
	}

	v1, err := algebra.RandomG1Vector(reader, n)
	if err != nil {
		return 0, 0, false, err
	}
	v2, err := algebra.RandomG2Vector(reader, n)
	if err != nil {
		return 0, 0, false, err
	}

	blindings := dory.Blindings{}
	if blindings.Rc, err = algebra.RandomScalar(reader); err != nil {
		return 0, 0, false, err
	}
	if blindings.Rd1, err = algebra.RandomScalar(reader); err != nil {
		return 0, 0, false, err
	}
	if blindings.Rd2, err = algebra.RandomScalar(reader); err != nil {
		return 0, 0, false, err
	}

	comm, err := dory.InitCommit(dory.Witness{V1: v1, V2: v2}, keys, blindings, srs.Ht)
	if err != nil {
		return 0, 0, false, err
	}

	start := time.Now()
	proof, err := dory.Prove(reader, dory.Witness{V1: v1, V2: v2}, keys, blindings, srs.Ht)
	if err != nil {
		return 0, 0, false, err
	}
	provingMS = time.Since(start).Milliseconds()

	start = time.Now()
	ok, err := dory.Verify(srs, keys, comm, proof)
	if err != nil {
		return 0, 0, false, err
	}
	verifyMS = time.Since(start).Milliseconds()

	return provingMS, verifyMS, ok, nil
}

func runSweep(seed uint64, outPath string) error {
	var sizes, provingYs, verifyYs []float64

	for k := 1; k <= 6; k++ {
		n := 1 << k
		provingMS, verifyMS, ok, err := runOnce(seed, n, "")
		if err != nil {
			return fmt.Errorf("n=%d: %w", n, err)
		}
		if !ok {
			return fmt.Errorf("n=%d: verification failed", n)
		}
		fmt.Printf("n=%d proving=%dms verification=%dms\n", n, provingMS, verifyMS)

		sizes = append(sizes, float64(n))
		provingYs = append(provingYs, float64(provingMS))
		verifyYs = append(verifyYs, float64(verifyMS))
	}

	graph := chart.Chart{
		Title: "DORY proving/verification time",
		XAxis: chart.XAxis{Name: "vector length n"},
		YAxis: chart.YAxis{Name: "milliseconds"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "proving", XValues: sizes, YValues: provingYs},
			chart.ContinuousSeries{Name: "verification", XValues: sizes, YValues: verifyYs},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

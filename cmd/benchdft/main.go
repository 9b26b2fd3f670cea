package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/cpu"
	dftmath "github.com/cwbudde/algo-dft/internal/math"
)

const (
	modeComplex   = "complex"
	modeReal      = "real"
	modeRoundtrip = "roundtrip"

	backendAlgoDFT = "algodft"
	backendGonum   = "gonum"
	backendGoDSP   = "go-dsp"
)

var errUnknownMode = errors.New("unknown mode")

type benchResult struct {
	backend string
	nsPerOp float64
	stdDev  float64
	maxErr  float64
}

// runner executes one transform of the benchmarked kind. It returns the
// produced spectrum or signal flattened to interleaved re/im pairs so that
// backends can be compared element by element.
type runner func() ([]float64, error)

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated power-of-two sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", modeComplex, "benchmark mode: complex, real, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
		compare  = flag.Bool("compare", true, "also time gonum and go-dsp")
	)
	flag.Parse()

	err := run(*sizeList, *iters, *warmup, *mode, *seed, *compare)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchdft: %v\n", err)
		os.Exit(1)
	}
}

func run(sizeList string, iters, warmup int, mode string, seed int64, compare bool) error {
	sizes, err := parseSizes(sizeList)
	if err != nil {
		return err
	}

	if len(sizes) == 0 {
		return errors.New("no sizes specified")
	}

	if iters < 1 {
		return fmt.Errorf("iters must be positive, got %d", iters)
	}

	modes, err := resolveModes(mode)
	if err != nil {
		return err
	}

	rnd := rand.New(rand.NewSource(seed))

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", iters, warmup)
	fmt.Printf("%8s  %10s  %8s  %12s  %10s  %10s\n", "size", "mode", "backend", "ns/op", "stddev", "max err")

	for _, n := range sizes {
		for _, runMode := range modes {
			results, err := benchmarkSize(rnd, n, iters, warmup, runMode, compare)
			if err != nil {
				return fmt.Errorf("size %d mode %s: %w", n, runMode, err)
			}

			for _, res := range results {
				fmt.Printf("%8d  %10s  %8s  %12.1f  %10.1f  %10.3g\n",
					n, runMode, res.backend, res.nsPerOp, res.stdDev, res.maxErr)
			}
		}
	}

	return nil
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string, compare bool) ([]benchResult, error) {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 2*rnd.Float64() - 1
	}

	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(signal[i], 2*rnd.Float64()-1)
	}

	runners, err := buildRunners(mode, signal, src, compare)
	if err != nil {
		return nil, err
	}

	results := make([]benchResult, 0, len(runners))

	var reference []float64

	for _, backend := range []string{backendAlgoDFT, backendGonum, backendGoDSP} {
		fn, ok := runners[backend]
		if !ok {
			continue
		}

		res, out, err := measure(fn, iters, warmup)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", backend, err)
		}

		res.backend = backend

		if reference == nil {
			reference = out
		} else {
			res.maxErr = floats.Distance(reference, out, math.Inf(1))
		}

		results = append(results, res)
	}

	if mode == modeRoundtrip && len(results) > 0 {
		// Round trips are compared against the input itself.
		results[0].maxErr = floats.Distance(reference, interleave(src), math.Inf(1))
	}

	return results, nil
}

func buildRunners(mode string, signal []float64, src []complex128, compare bool) (map[string]runner, error) {
	n := len(src)
	runners := make(map[string]runner, 3)

	switch mode {
	case modeComplex:
		plan, err := algodft.NewPlan64(algodft.Forward, n)
		if err != nil {
			return nil, err
		}

		buf := make([]complex128, n)
		runners[backendAlgoDFT] = func() ([]float64, error) {
			copy(buf, src)

			err := plan.Transform(buf)

			return interleave(buf), err
		}

		if compare {
			gonumPlan := fourier.NewCmplxFFT(n)
			dst := make([]complex128, n)
			runners[backendGonum] = func() ([]float64, error) {
				return interleave(gonumPlan.Coefficients(dst, src)), nil
			}
			runners[backendGoDSP] = func() ([]float64, error) {
				return interleave(fft.FFT(src)), nil
			}
		}
	case modeReal:
		plan, err := algodft.NewPlan64(algodft.Forward, n)
		if err != nil {
			return nil, err
		}

		buf := make([]float64, n)
		runners[backendAlgoDFT] = func() ([]float64, error) {
			copy(buf, signal)

			err := algodft.TransformReal64(buf, plan)
			if err != nil {
				return nil, err
			}

			bins, err := algodft.Unpack64(buf)
			if err != nil {
				return nil, err
			}

			return interleave(bins[:n/2+1]), nil
		}

		if compare {
			gonumPlan := fourier.NewFFT(n)
			dst := make([]complex128, n/2+1)
			runners[backendGonum] = func() ([]float64, error) {
				return interleave(gonumPlan.Coefficients(dst, signal)), nil
			}
			runners[backendGoDSP] = func() ([]float64, error) {
				return interleave(fft.FFTReal(signal)[:n/2+1]), nil
			}
		}
	case modeRoundtrip:
		forward, err := algodft.NewPlan64(algodft.Forward, n)
		if err != nil {
			return nil, err
		}

		inverse, err := algodft.NewPlan64(algodft.Inverse, n)
		if err != nil {
			return nil, err
		}

		buf := make([]complex128, n)
		runners[backendAlgoDFT] = func() ([]float64, error) {
			copy(buf, src)

			err := forward.Transform(buf)
			if err != nil {
				return nil, err
			}

			err = inverse.Transform(buf)

			return interleave(buf), err
		}

		if compare {
			gonumPlan := fourier.NewCmplxFFT(n)
			freq := make([]complex128, n)
			dst := make([]complex128, n)
			runners[backendGonum] = func() ([]float64, error) {
				gonumPlan.Coefficients(freq, src)
				gonumPlan.Sequence(dst, freq)

				// gonum's inverse is unnormalised.
				for i := range dst {
					dst[i] /= complex(float64(n), 0)
				}

				return interleave(dst), nil
			}
			runners[backendGoDSP] = func() ([]float64, error) {
				return interleave(fft.IFFT(fft.FFT(src))), nil
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}

	return runners, nil
}

func measure(fn runner, iters, warmup int) (benchResult, []float64, error) {
	for range warmup {
		_, err := fn()
		if err != nil {
			return benchResult{}, nil, err
		}
	}

	runtime.GC()

	samples := make([]float64, iters)

	var out []float64

	for i := range iters {
		start := time.Now()

		res, err := fn()
		if err != nil {
			return benchResult{}, nil, err
		}

		samples[i] = float64(time.Since(start).Nanoseconds())
		out = res
	}

	mean, std := stat.MeanStdDev(samples, nil)

	return benchResult{nsPerOp: mean, stdDev: std}, out, nil
}

func interleave(data []complex128) []float64 {
	out := make([]float64, 2*len(data))
	for i, v := range data {
		out[2*i] = real(v)
		out[2*i+1] = imag(v)
	}

	return out
}

func resolveModes(mode string) ([]string, error) {
	switch mode {
	case "all":
		return []string{modeComplex, modeReal, modeRoundtrip}, nil
	case modeComplex, modeReal, modeRoundtrip:
		return []string{mode}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}

		if !dftmath.IsPowerOf2(n) {
			return nil, fmt.Errorf("size %d is not a power of two (next is %d)", n, dftmath.NextPowerOfTwo(n))
		}

		out = append(out, n)
	}

	return out, nil
}

package operations

import (
	"time"

	"fuzzyvault/internal/kdf"
	"fuzzyvault/internal/progress"
)

// BenchmarkOptions contains all the parameters needed for benchmarking.
type BenchmarkOptions struct {
	Duration time.Duration
	Samples  int
}

// BenchmarkSample represents a single benchmark sample.
type BenchmarkSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// BenchmarkResult contains the results of the benchmark operation.
type BenchmarkResult struct {
	Samples         []BenchmarkSample
	TotalOps        uint64
	TotalTime       time.Duration
	AvgOpsPerSecond float64
	TimeEstimates   []TimeEstimate
}

// TimeEstimate represents an estimated time for recovering a corpus of a
// given size by brute-force re-hashing every candidate.
type TimeEstimate struct {
	CorpusSize    uint64
	EstimatedTime time.Duration
}

var benchmarkSalt = make([]byte, 32)

// RunBenchmarkSample measures how many scrypt identity hashes this machine
// can perform in the given duration, the same KDF call GenKeys makes on
// every fast-path attempt. Exported so a caller that wants to report
// progress (e.g. the benchmark CLI command) can drive the sample loop
// itself instead of waiting on RunBenchmark's aggregate result.
func RunBenchmarkSample(duration time.Duration) BenchmarkSample {
	msg := []byte("original_words:[1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]")

	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		if _, err := kdf.IdentityHash(msg, benchmarkSalt); err == nil {
			operations++
		}
	}

	elapsed := time.Since(start)
	return BenchmarkSample{
		Operations:   operations,
		Elapsed:      elapsed,
		OpsPerSecond: float64(operations) / elapsed.Seconds(),
	}
}

// AggregateBenchmark rolls a set of samples up into a BenchmarkResult,
// including brute-force time estimates for the corpus so an operator can
// judge how expensive brute-forcing the corpus would be for an attacker who
// has a Secret but not the original words.
func AggregateBenchmark(samples []BenchmarkSample) *BenchmarkResult {
	var totalOps uint64
	var totalTime time.Duration
	for _, s := range samples {
		totalOps += s.Operations
		totalTime += s.Elapsed
	}
	avgOpsPerSecond := float64(totalOps) / totalTime.Seconds()

	corpusSizes := []uint64{
		1000,
		7776,
		100000,
		1000000,
	}

	var timeEstimates []TimeEstimate
	for _, cs := range corpusSizes {
		estimatedTime := progress.EstimateTime(cs, avgOpsPerSecond)
		timeEstimates = append(timeEstimates, TimeEstimate{
			CorpusSize:    cs,
			EstimatedTime: estimatedTime,
		})
	}

	return &BenchmarkResult{
		Samples:         samples,
		TotalOps:        totalOps,
		TotalTime:       totalTime,
		AvgOpsPerSecond: avgOpsPerSecond,
		TimeEstimates:   timeEstimates,
	}
}

// RunBenchmark runs opts.Samples samples back to back and aggregates them.
// Callers that want per-sample progress reporting should call
// RunBenchmarkSample directly in their own loop instead.
func RunBenchmark(opts BenchmarkOptions) (*BenchmarkResult, error) {
	samples := make([]BenchmarkSample, opts.Samples)
	for i := range samples {
		samples[i] = RunBenchmarkSample(opts.Duration)
	}
	return AggregateBenchmark(samples), nil
}

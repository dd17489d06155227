package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fuzzyvault/internal/operations"
	"fuzzyvault/internal/progress"
)

// BenchmarkCommand handles the benchmark subcommand.
func BenchmarkCommand(args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)

	var (
		duration = fs.Duration("duration", 2*time.Second, "How long to run each benchmark sample")
		samples  = fs.Int("samples", 3, "Number of benchmark samples to take")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s benchmark [--duration DURATION] [--samples COUNT]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBenchmark scrypt identity-hash throughput to estimate brute-force recovery cost\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s benchmark\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s benchmark --duration 5s --samples 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking scrypt identity-hash throughput...\n")
	fmt.Printf("Duration per sample: %v\n", *duration)
	fmt.Printf("Number of samples: %d\n\n", *samples)

	bar := progress.New(uint64(*samples))
	taken := make([]operations.BenchmarkSample, *samples)
	for i := 0; i < *samples; i++ {
		taken[i] = operations.RunBenchmarkSample(*duration)
		bar.Update(uint64(i + 1))
	}
	bar.Finish()

	result := operations.AggregateBenchmark(taken)

	for i, sample := range result.Samples {
		fmt.Printf("  Sample %d: %d hashes in %v (%.1f hashes/sec)\n",
			i+1, sample.Operations, sample.Elapsed, sample.OpsPerSecond)
	}

	fmt.Printf("\n=== Benchmark Results ===\n")
	fmt.Printf("Average rate: %.1f hashes/second\n", result.AvgOpsPerSecond)
	fmt.Printf("Total operations: %d\n", result.TotalOps)
	fmt.Printf("Total time: %v\n\n", result.TotalTime)

	fmt.Printf("=== Brute-force Corpus Estimates ===\n")
	fmt.Printf("Assumes one identity hash per candidate word set tried.\n")
	for _, est := range result.TimeEstimates {
		fmt.Printf("Corpus size %d: %s\n", est.CorpusSize, progress.FormatDuration(est.EstimatedTime))
	}

	return nil
}

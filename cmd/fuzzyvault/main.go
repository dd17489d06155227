package main

import (
	"fmt"
	"os"

	"fuzzyvault/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "gen-params":
		err = cli.GenParamsCommand(args)
	case "gen-secret":
		err = cli.GenSecretCommand(args)
	case "gen-keys":
		err = cli.GenKeysCommand(args)
	case "recover":
		err = cli.RecoverCommand(args)
	case "benchmark":
		err = cli.BenchmarkCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("fuzzyvault - fuzzy key-recovery scheme CLI\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  gen-params   Derive public Params from a word-set shape\n")
	fmt.Printf("  gen-secret   Commit an original word set to a Secret\n")
	fmt.Printf("  gen-keys     Derive keys from a Secret and a candidate word set\n")
	fmt.Printf("  recover      Check whether a candidate word set would recover keys\n")
	fmt.Printf("  benchmark    Measure scrypt throughput to estimate brute-force recovery cost\n")
	fmt.Printf("  help         Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s gen-params --set-size 12 --correct-threshold 9 --corpus-size 7776 --params-path params.json\n", os.Args[0])
	fmt.Printf("  %s gen-secret --params-path params.json --words words.json --secret-path secret.json\n", os.Args[0])
	fmt.Printf("  %s gen-keys --secret secret.json --words guess.json --key-count 3\n", os.Args[0])
	fmt.Printf("\nFor detailed help on a command, use:\n")
	fmt.Printf("  %s <command> --help\n", os.Args[0])
}

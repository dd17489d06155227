package cli

import (
	"flag"
	"fmt"
	"os"

	"fuzzyvault/internal/operations"
)

// GenParamsCommand handles the gen-params subcommand.
func GenParamsCommand(args []string) error {
	fs := flag.NewFlagSet("gen-params", flag.ExitOnError)

	var (
		setSize          = fs.Int("set-size", 0, "number of words in a word set (required)")
		correctThreshold = fs.Int("correct-threshold", 0, "minimum correctly-matching words tolerated (required)")
		corpusSize       = fs.Int("corpus-size", 0, "size of the word corpus (required)")
		randomBytesPath  = fs.String("random-bytes", "", "file of raw random bytes, for reproducible output (optional)")
		paramsPath       = fs.String("params-path", "", "where to write the resulting params document (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen-params --set-size N --correct-threshold N --corpus-size N --params-path FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDerive public Params for a fuzzy key-recovery scheme instance\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *setSize <= 0 || *correctThreshold <= 0 || *corpusSize <= 0 || *paramsPath == "" {
		fs.Usage()
		return fmt.Errorf("--set-size, --correct-threshold, --corpus-size, and --params-path are required")
	}

	result, err := operations.GenParams(operations.GenParamsOptions{
		SetSize:          *setSize,
		CorrectThreshold: *correctThreshold,
		CorpusSize:       *corpusSize,
		RandomBytesPath:  *randomBytesPath,
		ParamsPath:       *paramsPath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote params to %s (prime=%d, extractor size=%d)\n",
		result.ParamsPath, result.Params.Prime, len(result.Params.Extractor))
	return nil
}

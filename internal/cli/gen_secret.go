package cli

import (
	"flag"
	"fmt"
	"os"

	"fuzzyvault/internal/operations"
)

// GenSecretCommand handles the gen-secret subcommand.
func GenSecretCommand(args []string) error {
	fs := flag.NewFlagSet("gen-secret", flag.ExitOnError)

	var (
		paramsPath = fs.String("params-path", "", "Params document produced by gen-params (required)")
		wordsPath  = fs.String("words", "", "JSON array of the original word set (required)")
		secretPath = fs.String("secret-path", "", "where to write the resulting secret document (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen-secret --params-path FILE --words FILE --secret-path FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCommit a word set to a Secret, given Params\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *paramsPath == "" || *wordsPath == "" || *secretPath == "" {
		fs.Usage()
		return fmt.Errorf("--params-path, --words, and --secret-path are required")
	}

	result, err := operations.GenSecret(operations.GenSecretOptions{
		ParamsPath: *paramsPath,
		WordsPath:  *wordsPath,
		SecretPath: *secretPath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote secret to %s\n", result.SecretPath)
	return nil
}

package cli

import (
	"flag"
	"fmt"
	"os"

	"fuzzyvault/internal/operations"
)

// RecoverCommand handles the recover subcommand: a dry run that reports
// whether a candidate word set would recover keys, without printing them.
func RecoverCommand(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)

	var (
		secretPath = fs.String("secret", "", "Secret document produced by gen-secret (required)")
		wordsPath  = fs.String("words", "", "JSON array of the candidate word set (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s recover --secret FILE --words FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCheck whether a candidate word set would recover keys, without emitting them\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *secretPath == "" || *wordsPath == "" {
		fs.Usage()
		return fmt.Errorf("--secret and --words are required")
	}

	result, err := operations.Recover(operations.RecoverOptions{
		SecretPath: *secretPath,
		WordsPath:  *wordsPath,
	})
	if err != nil {
		return err
	}

	if result.Verified {
		path := "slow (recovery was needed)"
		if result.FastPath {
			path = "fast (exact match)"
		}
		fmt.Printf("recovery would succeed via the %s path\n", path)
	} else {
		fmt.Println("recovery would fail")
	}
	return nil
}

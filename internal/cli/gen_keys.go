package cli

import (
	"flag"
	"fmt"
	"os"

	"fuzzyvault/internal/hexcodec"
	"fuzzyvault/internal/operations"
)

// GenKeysCommand handles the gen-keys subcommand.
func GenKeysCommand(args []string) error {
	fs := flag.NewFlagSet("gen-keys", flag.ExitOnError)

	var (
		secretPath = fs.String("secret", "", "Secret document produced by gen-secret (required)")
		wordsPath  = fs.String("words", "", "JSON array of the candidate word set (required)")
		keyCount   = fs.Int("key-count", 1, "number of keys to derive")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen-keys --secret FILE --words FILE [--key-count N]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDerive keys from a Secret and a candidate word set\n\n")
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

	result, err := operations.GenKeys(operations.GenKeysOptions{
		SecretPath: *secretPath,
		WordsPath:  *wordsPath,
		KeyCount:   *keyCount,
	})
	if err != nil {
		return err
	}

	for i, k := range result.Keys {
		fmt.Printf("key[%d]: %s\n", i, hexcodec.Encode(k[:]))
	}
	return nil
}

package operations

import (
	"fmt"

	"fuzzyvault/internal/fsutil"
	"fuzzyvault/internal/fuzzy"
	"fuzzyvault/internal/jsonio"
	"fuzzyvault/internal/types"
)

// GenKeysOptions contains all the parameters needed to derive keys from a
// Secret and a candidate word set.
type GenKeysOptions struct {
	SecretPath string
	WordsPath  string
	KeyCount   int
}

// GenKeysResult contains the outcome of the gen-keys operation.
type GenKeysResult struct {
	Keys []types.Key
}

// GenKeys runs GenKeys and returns the derived keys.
func GenKeys(opts GenKeysOptions) (*GenKeysResult, error) {
	secretData, err := fsutil.ReadFile(opts.SecretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret file: %v", err)
	}
	secret, err := jsonio.DecodeSecret(secretData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret: %v", err)
	}

	wordsData, err := fsutil.ReadFile(opts.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read words file: %v", err)
	}
	words, err := jsonio.DecodeWords(wordsData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode words: %v", err)
	}

	keys, err := fuzzy.GenKeys(secret, words, opts.KeyCount)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %v", err)
	}

	return &GenKeysResult{Keys: keys}, nil
}

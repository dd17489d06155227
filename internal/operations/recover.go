package operations

import (
	"fmt"

	"fuzzyvault/internal/fsutil"
	"fuzzyvault/internal/fuzzy"
	"fuzzyvault/internal/jsonio"
	"fuzzyvault/internal/kdf"
)

// RecoverOptions contains all the parameters needed to dry-run a recovery
// attempt without emitting keys.
type RecoverOptions struct {
	SecretPath string
	WordsPath  string
}

// RecoverResult reports whether a candidate word set would successfully
// derive keys, without revealing them.
type RecoverResult struct {
	FastPath bool // true if the candidate matched the committed hash directly
	Verified bool
}

// Recover inspects a candidate word set against a Secret and reports
// whether it would successfully recover keys, mirroring the teacher's
// check subcommand: it reads state and reports on it without mutating or
// producing secret material.
func Recover(opts RecoverOptions) (*RecoverResult, error) {
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

	kdf.ResetCounters()
	if _, err := fuzzy.GenKeys(secret, words, 1); err != nil {
		return &RecoverResult{Verified: false}, nil
	}
	fastPath := kdf.IdentityCalls() == 1
	return &RecoverResult{FastPath: fastPath, Verified: true}, nil
}

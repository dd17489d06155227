package operations

import (
	"fmt"

	"fuzzyvault/internal/fsutil"
	"fuzzyvault/internal/fuzzy"
	"fuzzyvault/internal/jsonio"
	"fuzzyvault/internal/types"
)

// GenSecretOptions contains all the parameters needed to generate a
// Secret from Params and an original word set.
type GenSecretOptions struct {
	ParamsPath string
	WordsPath  string
	SecretPath string
}

// GenSecretResult contains the outcome of the gen-secret operation.
type GenSecretResult struct {
	SecretPath string
	Secret     types.Secret
}

// GenSecret runs GenSecret and writes the resulting Secret document to
// disk.
func GenSecret(opts GenSecretOptions) (*GenSecretResult, error) {
	paramsData, err := fsutil.ReadFile(opts.ParamsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %v", err)
	}
	params, err := jsonio.DecodeParams(paramsData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode params: %v", err)
	}

	wordsData, err := fsutil.ReadFile(opts.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read words file: %v", err)
	}
	words, err := jsonio.DecodeWords(wordsData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode words: %v", err)
	}

	secret, err := fuzzy.GenSecret(params, words)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %v", err)
	}

	data, err := jsonio.EncodeSecret(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to encode secret: %v", err)
	}
	if err := fsutil.WriteFile(opts.SecretPath, data); err != nil {
		return nil, fmt.Errorf("failed to write secret file: %v", err)
	}

	return &GenSecretResult{SecretPath: opts.SecretPath, Secret: secret}, nil
}

package operations

import (
	"fmt"

	"fuzzyvault/internal/fsutil"
	"fuzzyvault/internal/fuzzy"
	"fuzzyvault/internal/jsonio"
	"fuzzyvault/internal/types"
)

// GenParamsOptions contains all the parameters needed to generate Params.
type GenParamsOptions struct {
	SetSize          int
	CorrectThreshold int
	CorpusSize       int
	RandomBytesPath  string // optional: file of raw random bytes, for reproducible output
	ParamsPath       string
}

// GenParamsResult contains the outcome of the gen-params operation.
type GenParamsResult struct {
	ParamsPath string
	Params     types.Params
}

// GenParams runs GenParams and writes the resulting Params document to
// disk.
func GenParams(opts GenParamsOptions) (*GenParamsResult, error) {
	input := types.Input{
		SetSize:          opts.SetSize,
		CorrectThreshold: opts.CorrectThreshold,
		CorpusSize:       opts.CorpusSize,
	}
	if opts.RandomBytesPath != "" {
		raw, err := fsutil.ReadFile(opts.RandomBytesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read random bytes file: %v", err)
		}
		input.RandomBytes = raw
	}

	params, err := fuzzy.GenParams(input)
	if err != nil {
		return nil, fmt.Errorf("failed to generate params: %v", err)
	}

	data, err := jsonio.EncodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %v", err)
	}
	if err := fsutil.WriteFile(opts.ParamsPath, data); err != nil {
		return nil, fmt.Errorf("failed to write params file: %v", err)
	}

	return &GenParamsResult{ParamsPath: opts.ParamsPath, Params: params}, nil
}

// Package jsonio marshals and unmarshals the scheme's public types to the
// JSON wire format: camelCase field names, upper-case hex for byte
// fields, and decimal arrays for word lists and field elements. Shape
// validation is handled by encoding/json's struct tags and the
// constructors in internal/fuzzy; this package does not reimplement a
// general JSON-schema validator.
package jsonio

import (
	"encoding/json"

	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/hexcodec"
	"fuzzyvault/internal/types"
)

type inputDoc struct {
	SetSize          int      `json:"setSize"`
	CorrectThreshold int      `json:"correctThreshold"`
	CorpusSize       int      `json:"corpusSize"`
	RandomBytes      []string `json:"randomBytes,omitempty"`
}

type paramsDoc struct {
	SetSize          int      `json:"setSize"`
	CorrectThreshold int      `json:"correctThreshold"`
	CorpusSize       int      `json:"corpusSize"`
	Prime            uint64   `json:"prime"`
	Extractor        []uint64 `json:"extractor"`
	Salt             string   `json:"salt"`
}

type secretDoc struct {
	paramsDoc
	Sketch []uint64 `json:"sketch"`
	Hash   string   `json:"hash"`
}

// randomBytesChunk is the line length used when rendering a byte string as
// a list of hex strings, matching the original scheme's 32-byte lines.
const randomBytesChunk = 32

// DecodeInput parses an Input JSON document.
func DecodeInput(data []byte) (types.Input, error) {
	var doc inputDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Input{}, ferr.New(ferr.InvalidInput, "malformed input JSON: "+err.Error())
	}
	input := types.Input{
		SetSize:          doc.SetSize,
		CorrectThreshold: doc.CorrectThreshold,
		CorpusSize:       doc.CorpusSize,
	}
	if len(doc.RandomBytes) > 0 {
		rb, err := hexcodec.DecodeList(doc.RandomBytes)
		if err != nil {
			return types.Input{}, err
		}
		input.RandomBytes = rb
	}
	return input, nil
}

// EncodeInput renders Input as its JSON document, splitting RandomBytes
// into a list of hex strings of randomBytesChunk bytes each.
func EncodeInput(input types.Input) ([]byte, error) {
	doc := inputDoc{
		SetSize:          input.SetSize,
		CorrectThreshold: input.CorrectThreshold,
		CorpusSize:       input.CorpusSize,
	}
	if input.RandomBytes != nil {
		doc.RandomBytes = hexcodec.EncodeList(input.RandomBytes, randomBytesChunk)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeParams renders Params as its JSON document.
func EncodeParams(p types.Params) ([]byte, error) {
	doc := paramsDoc{
		SetSize:          p.SetSize,
		CorrectThreshold: p.CorrectThreshold,
		CorpusSize:       p.CorpusSize,
		Prime:            p.Prime,
		Extractor:        p.Extractor,
		Salt:             hexcodec.Encode(p.Salt[:]),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeParams parses a Params JSON document.
func DecodeParams(data []byte) (types.Params, error) {
	var doc paramsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Params{}, ferr.New(ferr.InvalidInput, "malformed params JSON: "+err.Error())
	}
	salt, err := hexcodec.Decode(doc.Salt)
	if err != nil {
		return types.Params{}, err
	}
	if len(salt) != 32 {
		return types.Params{}, ferr.New(ferr.InvalidInput, "salt must be 32 bytes")
	}
	p := types.Params{
		SetSize:          doc.SetSize,
		CorrectThreshold: doc.CorrectThreshold,
		CorpusSize:       doc.CorpusSize,
		Prime:            doc.Prime,
		Extractor:        doc.Extractor,
	}
	copy(p.Salt[:], salt)
	return p, nil
}

// EncodeSecret renders Secret as its JSON document.
func EncodeSecret(s types.Secret) ([]byte, error) {
	doc := secretDoc{
		paramsDoc: paramsDoc{
			SetSize:          s.SetSize,
			CorrectThreshold: s.CorrectThreshold,
			CorpusSize:       s.CorpusSize,
			Prime:            s.Prime,
			Extractor:        s.Extractor,
			Salt:             hexcodec.Encode(s.Salt[:]),
		},
		Sketch: s.Sketch,
		Hash:   hexcodec.Encode(s.Hash[:]),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeSecret parses a Secret JSON document.
func DecodeSecret(data []byte) (types.Secret, error) {
	var doc secretDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Secret{}, ferr.New(ferr.InvalidInput, "malformed secret JSON: "+err.Error())
	}
	salt, err := hexcodec.Decode(doc.Salt)
	if err != nil {
		return types.Secret{}, err
	}
	if len(salt) != 32 {
		return types.Secret{}, ferr.New(ferr.InvalidInput, "salt must be 32 bytes")
	}
	hash, err := hexcodec.Decode(doc.Hash)
	if err != nil {
		return types.Secret{}, err
	}
	if len(hash) != 64 {
		return types.Secret{}, ferr.New(ferr.InvalidInput, "hash must be 64 bytes")
	}

	secret := types.Secret{
		Params: types.Params{
			SetSize:          doc.SetSize,
			CorrectThreshold: doc.CorrectThreshold,
			CorpusSize:       doc.CorpusSize,
			Prime:            doc.Prime,
			Extractor:        doc.Extractor,
		},
		Sketch: doc.Sketch,
	}
	copy(secret.Salt[:], salt)
	copy(secret.Hash[:], hash)
	return secret, nil
}

// EncodeWords renders a word list as its JSON array-of-ints document.
func EncodeWords(words []uint64) ([]byte, error) {
	return json.Marshal(words)
}

// DecodeWords parses a JSON array-of-ints document into a word list.
func DecodeWords(data []byte) ([]uint64, error) {
	var words []uint64
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, ferr.New(ferr.InvalidInput, "malformed words JSON: "+err.Error())
	}
	return words, nil
}

// EncodeKeys renders a list of keys as a JSON array of upper-case hex
// strings.
func EncodeKeys(keys []types.Key) ([]byte, error) {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = hexcodec.Encode(k[:])
	}
	return json.MarshalIndent(out, "", "  ")
}

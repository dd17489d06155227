// Package hexcodec implements the upper-case hexadecimal encoding used for
// every byte field in the JSON wire format (salt, hash, keys).
package hexcodec

import (
	"encoding/hex"
	"strings"

	"fuzzyvault/internal/ferr"
)

// Encode returns the upper-case hex representation of data, the inverse of
// Decode.
func Encode(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// Decode parses a hex string (case-insensitive on input, matching the
// leniency of Python's binascii.unhexlify) back into bytes.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ferr.New(ferr.InvalidInput, "invalid hex string: "+err.Error())
	}
	return b, nil
}

// EncodeList splits data into chunkSize-byte lines and hex-encodes each one,
// matching the randomBytes wire representation (a list of hex strings
// rather than one long one).
func EncodeList(data []byte, chunkSize int) []string {
	var out []string
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, Encode(data[i:end]))
	}
	return out
}

// DecodeList concatenates the bytes decoded from each hex string in order.
func DecodeList(hexes []string) ([]byte, error) {
	var out []byte
	for _, h := range hexes {
		b, err := Decode(h)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

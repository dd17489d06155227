// Package canon implements the canonical string encodings that feed the
// scrypt hashes in package kdf. These encodings are compatibility-critical:
// any change to their exact spacing or bracket placement changes every
// derived hash and key, so the functions here reproduce Python's list
// repr() formatting byte for byte rather than using a cleaner Go-native
// format.
package canon

import (
	"strconv"
	"strings"
)

// OriginalWords returns "original_words:" followed by the sorted word list
// rendered the way Python's str(list) renders a list of ints: "[1, 2, 3]",
// with ", " between elements and no trailing separator. words is not
// mutated; callers are expected to pass
// an already-sorted slice (gen_secret and gen_keys both sort before
// hashing).
func OriginalWords(words []uint64) string {
	return "original_words:" + renderIntList(words)
}

// KeyPrefix renders the extractor value e as the literal "key:<decimal>"
// used as the scrypt message when deriving the key-derivation seed.
func KeyPrefix(e uint64) string {
	return "key:" + strconv.FormatUint(e, 10)
}

func renderIntList(xs []uint64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(x, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// Package fuzzy implements the fuzzy key-recovery scheme's three entry
// points: GenParams, GenSecret, and GenKeys. A word set close enough to
// the one committed to at GenSecret time recovers the same keys as the
// original, tolerating up to 2*(setSize-correctThreshold) errors.
package fuzzy

import (
	"sort"

	"fuzzyvault/internal/bw"
	"fuzzyvault/internal/canon"
	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/field"
	"fuzzyvault/internal/kdf"
	"fuzzyvault/internal/poly"
	"fuzzyvault/internal/rng"
	"fuzzyvault/internal/types"
)

// RepeatedRootTest selects which square-free witness Recover uses. It
// defaults to the cheap gcd-based test; set it to
// poly.HasRepeatedRootsWitness for bit-level compatibility with the
// original z^p mod P_diff test.
var RepeatedRootTest = poly.HasRepeatedRootsGCD

// GenParams derives public Params from an Input. When input.RandomBytes is
// nil, entropy is drawn from the OS CSPRNG; a caller-supplied stream makes
// the output fully reproducible, which GenParams relies on for its own
// determinism tests.
func GenParams(input types.Input) (types.Params, error) {
	if input.SetSize <= 0 || input.CorrectThreshold <= 0 || input.CorpusSize <= 0 {
		return types.Params{}, ferr.New(ferr.InvalidInput, "sizes must be positive")
	}
	if input.CorrectThreshold > input.SetSize {
		return types.Params{}, ferr.New(ferr.InvalidInput, "correctThreshold must not exceed setSize")
	}
	if 2*(input.SetSize-input.CorrectThreshold) > input.SetSize {
		return types.Params{}, ferr.New(ferr.InvalidInput, "correctThreshold is too low for setSize: 2*(setSize-correctThreshold) must not exceed setSize")
	}

	var stream rng.Stream
	if input.RandomBytes != nil {
		stream = rng.NewFixedStream(input.RandomBytes)
	} else {
		stream = rng.NewOSStream()
	}

	prime, err := field.FirstPrimeGreaterThan(uint64(input.CorpusSize))
	if err != nil {
		return types.Params{}, err
	}

	saltBytes, err := stream.Bytes(32)
	if err != nil {
		return types.Params{}, err
	}
	var salt [32]byte
	copy(salt[:], saltBytes)

	extractor, err := rng.Select(stream, int(prime), input.SetSize)
	if err != nil {
		return types.Params{}, err
	}

	return types.Params{
		SetSize:          input.SetSize,
		CorrectThreshold: input.CorrectThreshold,
		CorpusSize:       input.CorpusSize,
		Prime:            prime,
		Extractor:        extractor,
		Salt:             salt,
	}, nil
}

// GenSecret commits params to a specific word set: it computes the public
// sketch that lets an approximately-correct guess be corrected, and a hash
// that verifies a corrected guess without revealing the original words.
func GenSecret(params types.Params, words []uint64) (types.Secret, error) {
	if err := checkWords(words, params.SetSize, params.CorpusSize); err != nil {
		return types.Secret{}, err
	}
	if !field.IsPrime(params.Prime) {
		return types.Secret{}, ferr.New(ferr.NotPrime, "params.Prime is not prime")
	}

	f := field.New(params.Prime)
	errThreshold := 2 * (params.SetSize - params.CorrectThreshold)
	sketch, err := GenSketch(f, words, errThreshold)
	if err != nil {
		return types.Secret{}, err
	}

	sorted := sortedCopy(words)
	hash, err := kdf.IdentityHash([]byte(canon.OriginalWords(sorted)), params.Salt[:])
	if err != nil {
		return types.Secret{}, err
	}
	var h [64]byte
	copy(h[:], hash)

	return types.Secret{
		Params: params,
		Sketch: sketch,
		Hash:   h,
	}, nil
}

// GenKeys derives keyCount 512-bit keys from a secret and a candidate word
// set. If the candidate matches the committed hash exactly, the fast path
// fires: a single identity-hash call confirms it and keys are derived
// directly. Otherwise the slow path attempts to correct the candidate
// using the sketch, re-checking the hash on the corrected set.
func GenKeys(secret types.Secret, words []uint64, keyCount int) ([]types.Key, error) {
	if keyCount < 0 {
		return nil, ferr.New(ferr.InvalidInput, "keyCount must be non-negative")
	}
	if keyCount == 0 {
		return nil, nil
	}
	if err := checkWords(words, secret.SetSize, secret.CorpusSize); err != nil {
		return nil, err
	}
	if !field.IsPrime(secret.Prime) {
		return nil, ferr.New(ferr.NotPrime, "secret.Prime is not prime")
	}

	f := field.New(secret.Prime)
	sorted := sortedCopy(words)

	ek, err := func() ([]byte, error) {
		candidateHash, err := kdf.IdentityHash([]byte(canon.OriginalWords(sorted)), secret.Salt[:])
		if err != nil {
			return nil, err
		}
		if bytesEqual(candidateHash, secret.Hash[:]) {
			return computeEK(f, secret, sorted)
		}

		recouped, err := Recover(secret, sorted)
		if err != nil {
			return nil, err
		}
		recoupedSorted := sortedCopy(recouped)
		recoupedHash, err := kdf.IdentityHash([]byte(canon.OriginalWords(recoupedSorted)), secret.Salt[:])
		if err != nil {
			return nil, err
		}
		if !bytesEqual(recoupedHash, secret.Hash[:]) {
			return nil, ferr.New(ferr.HashMismatch, "recovered word set does not match committed hash")
		}
		return computeEK(f, secret, recoupedSorted)
	}()
	if err != nil {
		return nil, err
	}

	keys := make([]types.Key, keyCount)
	for i := 0; i < keyCount; i++ {
		copy(keys[i][:], kdf.DeriveKey(ek, i))
	}
	return keys, nil
}

func computeEK(f field.Field, secret types.Secret, sortedWords []uint64) ([]byte, error) {
	e := ComputeE(f, secret.Extractor, sortedWords)
	return kdf.SeedHash([]byte(canon.KeyPrefix(e)), secret.Salt[:])
}

// Recover attempts to correct a candidate word set back to the original
// using the secret's sketch, via the Berlekamp-Welch decoder. words must
// already be sorted.
func Recover(secret types.Secret, words []uint64) ([]uint64, error) {
	if len(words) != secret.SetSize {
		return nil, ferr.New(ferr.InvalidInput, "length of words is not equal to setSize")
	}
	if !field.IsPrime(secret.Prime) {
		return nil, ferr.New(ferr.NotPrime, "secret.Prime is not prime")
	}
	f := field.New(secret.Prime)
	errThreshold := 2 * (secret.SetSize - secret.CorrectThreshold)

	pHigh, err := PHigh(f, secret.Sketch, secret.SetSize)
	if err != nil {
		return nil, err
	}

	aVals := make([]field.Elem, len(words))
	bVals := make([]field.Elem, len(words))
	for i, w := range words {
		aVals[i] = w
		bVals[i] = pHigh.Eval(w)
	}

	k := secret.SetSize - errThreshold
	t := errThreshold / 2
	pLow, err := bw.Decode(f, aVals, bVals, k, t)
	if err != nil {
		return nil, err
	}

	pDiff := pHigh.Sub(pLow)
	if RepeatedRootTest(pDiff) {
		return nil, ferr.New(ferr.RepeatedRoots, "recovered polynomial has repeated roots")
	}
	return pDiff.Roots(), nil
}

// GenSketch returns the top thresh coefficients (excluding the leading 1)
// of Π(z - w_i) for the word set, the public helper value that lets a
// close guess be corrected back to the original.
func GenSketch(f field.Field, words []uint64, thresh int) ([]uint64, error) {
	if thresh%2 != 0 {
		return nil, ferr.New(ferr.InvalidInput, "error threshold must be even")
	}
	elems := make([]field.Elem, len(words))
	for i, w := range words {
		elems[i] = w
	}
	p := poly.FromRoots(f, elems)
	nwords := len(words)
	full := p.Coeffs(nwords + 1)
	out := make([]uint64, thresh)
	copy(out, full[nwords-thresh:nwords])
	return out, nil
}

// PHigh reconstructs the monic degree-s polynomial whose top thresh
// coefficients are tlist and whose remaining coefficients (below the
// sketch window) are zero.
func PHigh(f field.Field, tlist []uint64, s int) (poly.Poly, error) {
	nzeros := s - len(tlist)
	if nzeros < 0 {
		return poly.Poly{}, ferr.New(ferr.InvalidInput, "sketch longer than setSize")
	}
	coeffs := make([]field.Elem, s+1)
	for i, v := range tlist {
		coeffs[nzeros+i] = v
	}
	coeffs[s] = 1
	return poly.New(f, coeffs), nil
}

// ComputeE returns the extractor value e = Π(extractor[i] * words[i]) mod
// p, the field element the key-derivation seed is built from. words must
// already be sorted.
func ComputeE(f field.Field, extractor, words []uint64) field.Elem {
	e := field.Elem(1) % f.P
	for i := 0; i < len(extractor); i++ {
		e = f.Mul(e, f.Mul(extractor[i]%f.P, words[i]%f.P))
	}
	return e
}

func checkWords(words []uint64, setSize, corpusSize int) error {
	if len(words) != setSize {
		return ferr.New(ferr.InvalidInput, "incorrect number of words")
	}
	seen := make(map[uint64]bool, len(words))
	for _, w := range words {
		if seen[w] {
			return ferr.New(ferr.InvalidInput, "words are not unique")
		}
		seen[w] = true
		if w >= uint64(corpusSize) {
			return ferr.New(ferr.InvalidInput, "word out of range")
		}
	}
	return nil
}

func sortedCopy(words []uint64) []uint64 {
	out := append([]uint64(nil), words...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

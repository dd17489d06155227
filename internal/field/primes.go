package field

import (
	"math/big"

	"fuzzyvault/internal/ferr"
)

// IsPrime reports whether k is prime, deterministic for any k < 2^64.
//
// Grounded on the same idiom the retrieval pack's lattice library uses for
// its own modulus checks (ring.Int.IsPrime wraps big.Int.ProbablyPrime) -
// Go's ProbablyPrime(20) has no known false positive below 2^64, which is
// why it is the standard substitute for a dedicated deterministic Miller-
// Rabin/BPSW implementation in Go code.
func IsPrime(k uint64) bool {
	if k < 2 {
		return false
	}
	return new(big.Int).SetUint64(k).ProbablyPrime(20)
}

// FirstPrimeGreaterThan returns the least prime strictly greater than k.
func FirstPrimeGreaterThan(k uint64) (uint64, error) {
	if k < 1 {
		return 0, ferr.New(ferr.InvalidInput, "k < 1")
	}
	for n := k + 1; ; n++ {
		if IsPrime(n) {
			return n, nil
		}
	}
}

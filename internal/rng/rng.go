// Package rng implements the deterministic/OS-backed byte stream and the
// Fisher-Yates selection used to build Params from an Input.
package rng

import (
	"crypto/rand"
	"encoding/binary"

	"fuzzyvault/internal/ferr"
)

// Stream produces bytes and little-endian uint32s, either from a fixed
// caller-supplied sequence or from the OS entropy source.
type Stream interface {
	Bytes(n int) ([]byte, error)
	Uint32() (uint32, error)
}

// FixedStream consumes a caller-supplied byte sequence sequentially from
// offset 0. Running off the end of the sequence is an InvalidInput error,
// not a panic - input validation should make this unreachable for
// well-formed requests, but the stream itself stays defensive.
type FixedStream struct {
	data []byte
	idx  int
}

// NewFixedStream wraps data as a Stream.
func NewFixedStream(data []byte) *FixedStream {
	return &FixedStream{data: data}
}

// Bytes returns the next n bytes of the stream.
func (s *FixedStream) Bytes(n int) ([]byte, error) {
	if s.idx+n > len(s.data) {
		return nil, ferr.New(ferr.InvalidInput, "random byte stream exhausted")
	}
	out := make([]byte, n)
	copy(out, s.data[s.idx:s.idx+n])
	s.idx += n
	return out, nil
}

// Uint32 consumes 4 bytes as little-endian and returns them as a uint32.
func (s *FixedStream) Uint32() (uint32, error) {
	b, err := s.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// OSStream draws from crypto/rand, the same reader the rest of this module's
// teacher lineage uses for key and puzzle material.
type OSStream struct{}

// NewOSStream returns a Stream backed by the OS CSPRNG.
func NewOSStream() *OSStream {
	return &OSStream{}
}

// Bytes returns n fresh random bytes.
func (s *OSStream) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Uint32 returns a fresh random uint32.
func (s *OSStream) Uint32() (uint32, error) {
	b, err := s.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Select performs a Fisher-Yates shuffle of [0, n) and returns the first m
// entries. It intentionally reproduces the modulo-bias of `k % (n-i)`
// instead of rejection sampling, to stay interoperable with existing
// derivations from this scheme - see the design notes for the rationale.
func Select(s Stream, n, m int) ([]uint64, error) {
	if m <= 0 || m > n {
		return nil, ferr.New(ferr.InvalidInput, "select: m must be in (0, n]")
	}
	xs := make([]uint64, n)
	for i := range xs {
		xs[i] = uint64(i)
	}
	for i := 0; i < m; i++ {
		u, err := s.Uint32()
		if err != nil {
			return nil, err
		}
		k := i + int(u%uint32(n-i))
		xs[i], xs[k] = xs[k], xs[i]
	}
	return xs[:m], nil
}

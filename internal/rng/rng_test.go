package rng

import "testing"

func TestFixedStreamSequentialConsumption(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	s := NewFixedStream(data)

	b, err := s.Bytes(2)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if b[0] != 0x01 || b[1] != 0x02 {
		t.Fatalf("unexpected bytes %v", b)
	}

	u, err := s.Uint32()
	if err != nil {
		t.Fatalf("Uint32: %v", err)
	}
	want := uint32(0x03) | uint32(0x04)<<8 | uint32(0x05)<<16 | uint32(0x06)<<24
	if u != want {
		t.Fatalf("Uint32 = %x, want %x", u, want)
	}

	if _, err := s.Bytes(3); err == nil {
		t.Fatalf("expected exhaustion error")
	}
}

func TestOSStreamProducesDistinctBytes(t *testing.T) {
	s := NewOSStream()
	a, err := s.Bytes(32)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	b, err := s.Bytes(32)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(a) == string(b) {
		t.Fatalf("two OS draws were identical, suspicious")
	}
}

func TestSelectReturnsDistinctValuesInRange(t *testing.T) {
	data := make([]byte, 4*20)
	for i := range data {
		data[i] = byte(i * 37)
	}
	s := NewFixedStream(data)

	got, err := Select(s, 20, 7)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("len(got) = %d, want 7", len(got))
	}
	seen := make(map[uint64]bool)
	for _, v := range got {
		if v >= 20 {
			t.Fatalf("value %d out of range [0,20)", v)
		}
		if seen[v] {
			t.Fatalf("duplicate value %d", v)
		}
		seen[v] = true
	}
}

func TestSelectRejectsBadBounds(t *testing.T) {
	s := NewOSStream()
	if _, err := Select(s, 5, 0); err == nil {
		t.Fatalf("expected error for m=0")
	}
	if _, err := Select(s, 5, 6); err == nil {
		t.Fatalf("expected error for m>n")
	}
}

func TestDeterministicSelectReproducible(t *testing.T) {
	seed := []byte("0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF")
	s1 := NewFixedStream(append([]byte(nil), seed...))
	s2 := NewFixedStream(append([]byte(nil), seed...))

	got1, err := Select(s1, 50, 12)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	got2, err := Select(s2, 50, 12)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("Select not deterministic at index %d: %d vs %d", i, got1[i], got2[i])
		}
	}
}

package fuzzy

import (
	"testing"

	"fuzzyvault/internal/field"
)

func TestGenSketchPHighRoundTrip(t *testing.T) {
	f := field.New(7001)
	ws := []uint64{10, 20, 30, 40, 50, 60}
	thresh := 4

	sketch, err := GenSketch(f, ws, thresh)
	if err != nil {
		t.Fatalf("GenSketch: %v", err)
	}
	if len(sketch) != thresh {
		t.Fatalf("len(sketch) = %d, want %d", len(sketch), thresh)
	}

	pHigh, err := PHigh(f, sketch, len(ws))
	if err != nil {
		t.Fatalf("PHigh: %v", err)
	}

	if pHigh.Degree() != len(ws) {
		t.Fatalf("pHigh degree = %d, want %d", pHigh.Degree(), len(ws))
	}
	full := pHigh.Coeffs(len(ws) + 1)
	for i, v := range sketch {
		if full[len(ws)-thresh+i] != v {
			t.Fatalf("pHigh coefficient mismatch at sketch index %d", i)
		}
	}
}

func TestGenSketchRejectsOddThreshold(t *testing.T) {
	f := field.New(7001)
	_, err := GenSketch(f, []uint64{1, 2, 3}, 3)
	if err == nil {
		t.Fatalf("expected error for odd threshold")
	}
}

// ComputeE multiplies all extractor[i]*words[i] together, so the result does
// not depend on how words are paired with extractor entries:
// (3*1)(5*2)(7*4) and (3*2)(5*1)(7*4) are both 840 mod 929.
func TestComputeEIsIndependentOfWordOrder(t *testing.T) {
	f := field.New(929)
	extractor := []uint64{3, 5, 7}
	wordsA := []uint64{1, 2, 4}
	wordsB := []uint64{2, 1, 4}

	eA := ComputeE(f, extractor, wordsA)
	eB := ComputeE(f, extractor, wordsB)
	if eA != 840 || eB != 840 {
		t.Fatalf("ComputeE = %d and %d, want 840 for both word orders", eA, eB)
	}
}

func TestComputeEDeterministic(t *testing.T) {
	f := field.New(929)
	extractor := []uint64{3, 5, 7}
	ws := []uint64{1, 2, 4}
	if ComputeE(f, extractor, ws) != ComputeE(f, extractor, ws) {
		t.Fatalf("ComputeE not deterministic")
	}
}

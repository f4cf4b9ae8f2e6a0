package gausslog

import (
	"reflect"
	"testing"
)

func TestExtractBasisSummary(t *testing.T) {
	lines := []string{
		" There are     9 symmetry adapted cartesian basis functions of A1  symmetry.",
		" There are     9 symmetry adapted basis functions of A1  symmetry.",
		" There are     2 symmetry adapted basis functions of A2  symmetry.",
		" There are     3 symmetry adapted basis functions of B1  symmetry.",
		" There are     3 symmetry adapted basis functions of B2  symmetry.",
		"    17 basis functions,    28 primitive gaussians,    18 cartesian basis functions",
	}
	sum, err := extractBasisSummary(lines, Span{Kind: SectionBasisSummary, Start: 0, End: len(lines)})
	if err != nil {
		t.Fatal(err)
	}
	if sum.BasisFunctions != 17 {
		t.Errorf("basis functions: got %d, want 17", sum.BasisFunctions)
	}
	if sum.PrimitiveGaussians != 28 {
		t.Errorf("primitives: got %d, want 28", sum.PrimitiveGaussians)
	}
	if sum.CartesianFunctions != 18 {
		t.Errorf("cartesian: got %d, want 18", sum.CartesianFunctions)
	}
	want := map[string]int{"A1": 9, "A2": 2, "B1": 3, "B2": 3}
	if !reflect.DeepEqual(sum.BySymmetry, want) {
		t.Errorf("by symmetry: got %v, want %v", sum.BySymmetry, want)
	}
}

// Labels outside the point group tables are carried through as opaque
// strings rather than rejected.
func TestExtractBasisSummaryUnknownLabel(t *testing.T) {
	lines := []string{
		" There are     4 symmetry adapted basis functions of ?A  symmetry.",
	}
	sum, err := extractBasisSummary(lines, Span{Kind: SectionBasisSummary, Start: 0, End: 1})
	if err != nil {
		t.Fatal(err)
	}
	if sum.BySymmetry["?A"] != 4 {
		t.Errorf("got %v, want ?A: 4", sum.BySymmetry)
	}
}

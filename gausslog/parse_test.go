package gausslog

import (
	"errors"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"
)

func parseFixture(t *testing.T) *Report {
	t.Helper()
	rep, err := ParseFile("testdata/methane.log")
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestParseMethaneAtoms(t *testing.T) {
	rep := parseFixture(t)
	want := []Atom{
		{Index: 1, Symbol: "C", AtomicNumber: 6},
		{Index: 2, Symbol: "H", AtomicNumber: 1},
		{Index: 3, Symbol: "H", AtomicNumber: 1},
		{Index: 4, Symbol: "H", AtomicNumber: 1},
		{Index: 5, Symbol: "H", AtomicNumber: 1},
	}
	if !reflect.DeepEqual(rep.Atoms, want) {
		t.Errorf("atoms: got %v, want %v", rep.Atoms, want)
	}
	if len(rep.Geometries) != 2 {
		t.Fatalf("got %d geometry blocks, want input and standard", len(rep.Geometries))
	}
	std, ok := rep.Geometry("Standard")
	if !ok {
		t.Fatal("no standard orientation")
	}
	if got, want := std.Coords[1], (Vec3{0, 0, 1.090755}); got != want {
		t.Errorf("atom 2 coords: got %v, want %v", got, want)
	}
}

func TestParseMethaneOrbitals(t *testing.T) {
	rep := parseFixture(t)
	if len(rep.Orbitals) != 1 {
		t.Fatalf("got %d orbital sets, want 1", len(rep.Orbitals))
	}
	set := rep.Orbitals[0]
	var occ, virt []Orbital
	for _, o := range set.Orbitals {
		if o.Occupied {
			occ = append(occ, o)
		} else {
			virt = append(virt, o)
		}
	}
	if len(occ) != 5 {
		t.Errorf("occupied: got %d, want 5", len(occ))
	}
	if len(virt) == 0 || virt[0].Energy != 0.05349 {
		t.Errorf("first virtual: got %+v", virt)
	}
	if occ[0].Symmetry != "A1" || occ[2].Symmetry != "T2" {
		t.Errorf("occupied symmetries: got %q, %q", occ[0].Symmetry, occ[2].Symmetry)
	}
}

func TestParseMethanePopulations(t *testing.T) {
	rep := parseFixture(t)
	for _, scheme := range []ChargeScheme{Mulliken, ESP, NPA} {
		charges := rep.Charges(scheme)
		if len(charges) != len(rep.Atoms) {
			t.Errorf("%s: got %d rows, want %d", scheme, len(charges), len(rep.Atoms))
		}
		var sum float64
		for _, c := range charges {
			sum += c.Charge
		}
		if math.Abs(sum-float64(rep.Metadata.Charge)) > 1e-4 {
			t.Errorf("%s: charges sum to %v, stated net charge %d", scheme, sum, rep.Metadata.Charge)
		}
	}
	if rep.Charges(Mulliken)[0].Charge != -0.437226 {
		t.Errorf("mulliken carbon: got %v", rep.Charges(Mulliken)[0].Charge)
	}
	summed, ok := rep.Population(MullikenSummed)
	if !ok {
		t.Fatal("no summed mulliken record")
	}
	if len(summed.Charges) != 1 || summed.Charges[0].Atom != 1 {
		t.Errorf("summed record: got %+v", summed.Charges)
	}
	npa, _ := rep.Population(NPA)
	if npa.Natural[0].Valence == nil || *npa.Natural[0].Valence != 4.82679 {
		t.Errorf("npa carbon valence: got %v", npa.Natural[0].Valence)
	}
	esp, _ := rep.Population(ESP)
	if esp.Dipole == nil || esp.Dipole.Total != 0.0002 {
		t.Errorf("esp fitted dipole: got %+v", esp.Dipole)
	}
}

func TestParseMethaneBasisAndMoments(t *testing.T) {
	rep := parseFixture(t)
	if rep.Basis == nil {
		t.Fatal("no basis summary")
	}
	if rep.Basis.BasisFunctions != 17 || rep.Basis.PrimitiveGaussians != 28 {
		t.Errorf("totals: got %+v", rep.Basis)
	}
	total := 0
	for _, n := range rep.Basis.BySymmetry {
		total += n
	}
	if total != rep.Basis.BasisFunctions {
		t.Errorf("per-symmetry counts sum to %d, want %d", total, rep.Basis.BasisFunctions)
	}
	if rep.Multipoles == nil || rep.Multipoles.Quadrupole == nil {
		t.Fatalf("moments: got %+v", rep.Multipoles)
	}
	if rep.Multipoles.Quadrupole.XX != -8.3142 {
		t.Errorf("quadrupole XX: got %v", rep.Multipoles.Quadrupole.XX)
	}
}

func TestParseMethaneMetadataAndCompleteness(t *testing.T) {
	rep := parseFixture(t)
	m := rep.Metadata
	if m.Method != "B3LYP" || m.BasisSet != "6-31G*" {
		t.Errorf("method/basis: got %q/%q", m.Method, m.BasisSet)
	}
	if m.Termination != TerminationNormal {
		t.Errorf("termination: got %v", m.Termination)
	}
	if m.Version != "ES64L-G09RevD.01" {
		t.Errorf("version: got %q", m.Version)
	}
	for kind, presence := range rep.Completeness {
		if presence != Found {
			t.Errorf("%v: got %v, want found", kind, presence)
		}
	}
	if len(rep.Diagnostics) != 0 {
		t.Errorf("clean log should have no diagnostics, got %v", rep.Diagnostics)
	}
}

// Parsing the same bytes twice must give identical reports.
func TestParseDeterministic(t *testing.T) {
	data, err := os.ReadFile("testdata/methane.log")
	if err != nil {
		t.Fatal(err)
	}
	a, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("reports differ between runs")
	}
}

// A log without any population analysis still parses; the kinds are
// reported absent rather than raising.
func TestParseMissingPopulationIsAbsent(t *testing.T) {
	lines := geometryLines("Standard orientation:")
	rep, err := ParseLines(lines)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Completeness[SectionMulliken] != Absent {
		t.Errorf("mulliken: got %v, want absent", rep.Completeness[SectionMulliken])
	}
	if rep.Completeness[SectionNaturalPopulation] != Absent {
		t.Errorf("npa: got %v, want absent", rep.Completeness[SectionNaturalPopulation])
	}
	if rep.Completeness[SectionGeometry] != Found {
		t.Errorf("geometry: got %v, want found", rep.Completeness[SectionGeometry])
	}
}

// A truncated section fails alone; everything else still extracts.
func TestParseTruncatedSectionIsolated(t *testing.T) {
	lines := append([]string{}, geometryLines("Standard orientation:")...)
	lines = append(lines,
		" Mulliken charges:",
		"               1",
		"     1  C   -0.437226",
		"     2  H",
	)
	rep, err := ParseLines(lines)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Completeness[SectionMulliken] != FoundWithError {
		t.Errorf("mulliken: got %v, want found-with-error", rep.Completeness[SectionMulliken])
	}
	if _, ok := rep.Population(Mulliken); ok {
		t.Error("failed section must not contribute a record")
	}
	if rep.Completeness[SectionGeometry] != Found {
		t.Errorf("geometry: got %v, want found", rep.Completeness[SectionGeometry])
	}
	if len(rep.Diagnostics) == 0 {
		t.Error("want a diagnostic naming the failed section")
	}
}

// Atom-indexed rows pointing at a nonexistent atom drop the containing
// record but not the parse.
func TestParseDanglingAtomReference(t *testing.T) {
	lines := append([]string{}, geometryLines("Standard orientation:")...)
	lines = append(lines,
		" Mulliken charges:",
		"               1",
		"     1  C   -0.437226",
		"     9  H    0.437226",
		" Sum of Mulliken charges =   0.00000",
	)
	rep, err := ParseLines(lines)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rep.Population(Mulliken); ok {
		t.Error("record with dangling reference must be dropped")
	}
	if rep.Completeness[SectionMulliken] != FoundWithError {
		t.Errorf("mulliken: got %v, want found-with-error", rep.Completeness[SectionMulliken])
	}
	found := false
	for _, d := range rep.Diagnostics {
		if strings.Contains(d.Cause, "nonexistent atom 9") {
			found = true
		}
	}
	if !found {
		t.Errorf("want dangling-reference diagnostic, got %v", rep.Diagnostics)
	}
}

// Without the structural backbone nothing can be bound: the only fatal
// outcome.
func TestParseIncompleteJob(t *testing.T) {
	_, err := ParseLines([]string{
		" Mulliken charges:",
		"               1",
		"     1  C   -0.437226",
		" Sum of Mulliken charges =   -0.43723",
	})
	var incomplete *IncompleteJobError
	if !errors.As(err, &incomplete) {
		t.Fatalf("got %v, want IncompleteJobError", err)
	}
}

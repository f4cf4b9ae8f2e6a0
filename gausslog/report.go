// Package gausslog extracts a structured report from the textual output
// of a Gaussian calculation: geometry, basis-set summary, orbital
// energies, population analyses, multipole moments, and job metadata.
//
// Parsing is a single forward pass over the log followed by a resolver
// pass that binds atom-indexed tables to the canonical atom list. A
// parse either returns a usable, possibly partial Report together with
// diagnostics for anything that could not be extracted, or fails with
// IncompleteJobError when the structural backbone (the atom list) is
// missing entirely.
package gausslog

import "time"

// SectionKind identifies one report kind in the log stream.
type SectionKind int

const (
	SectionUnclassified SectionKind = iota
	SectionGeometry
	SectionBasisSummary
	SectionOrbitalSymmetries
	SectionOrbitalEnergies
	SectionMulliken
	SectionESPCharges
	SectionNaturalPopulation
	SectionMultipole
	SectionMetadata
)

func (k SectionKind) String() string {
	switch k {
	case SectionGeometry:
		return "geometry"
	case SectionBasisSummary:
		return "basis-summary"
	case SectionOrbitalSymmetries:
		return "orbital-symmetries"
	case SectionOrbitalEnergies:
		return "orbital-energies"
	case SectionMulliken:
		return "mulliken-charges"
	case SectionESPCharges:
		return "esp-charges"
	case SectionNaturalPopulation:
		return "natural-population"
	case SectionMultipole:
		return "multipole-moments"
	case SectionMetadata:
		return "job-metadata"
	default:
		return "unclassified"
	}
}

// Presence records whether a section kind was seen in the log. The zero
// value is Absent so that absent kinds need no explicit entry.
type Presence int

const (
	Absent Presence = iota
	Found
	FoundWithError
)

func (p Presence) String() string {
	switch p {
	case Found:
		return "found"
	case FoundWithError:
		return "found-with-error"
	default:
		return "absent"
	}
}

// Atom is the canonical identity of one center, established once from
// the first geometry table and referenced by index everywhere else.
type Atom struct {
	Index        int // 1-based center number
	Symbol       string
	AtomicNumber int
	MassNumber   int // 0 unless the table carried an isotope tag
}

// Vec3 holds Cartesian coordinates in angstroms.
type Vec3 struct {
	X, Y, Z float64
}

// GeometryBlock is one orientation table. Coords[i] belongs to the atom
// with index i+1; the atom identities themselves live on the Report.
type GeometryBlock struct {
	Orientation string // "Input", "Standard", "Z-Matrix"
	Coords      []Vec3
}

// BasisSummary gives the basis-function totals and the per-symmetry
// breakdown. Symmetry labels are kept as printed, unknown ones included.
type BasisSummary struct {
	BasisFunctions     int
	PrimitiveGaussians int
	CartesianFunctions int
	BySymmetry         map[string]int
}

// Spin tags the spin channel of an orbital set.
type Spin string

const (
	SpinAlpha Spin = "alpha"
	SpinBeta  Spin = "beta"
)

type Orbital struct {
	Index    int // 1-based, contiguous within a spin channel
	Occupied bool
	Energy   float64 // hartree
	Symmetry string  // empty when no symmetry block preceded the run
}

// OrbitalSet is one printing of the eigenvalues for one spin channel.
// Occupied orbitals precede virtual ones.
type OrbitalSet struct {
	Spin     Spin
	Orbitals []Orbital
}

// ChargeScheme names a population-analysis scheme.
type ChargeScheme string

const (
	Mulliken       ChargeScheme = "mulliken"
	MullikenSummed ChargeScheme = "mulliken-summed"
	ESP            ChargeScheme = "esp"
	ESPSummed      ChargeScheme = "esp-summed"
	NPA            ChargeScheme = "npa"
)

// AtomicCharge binds one charge value to an atom by index.
type AtomicCharge struct {
	Atom   int
	Charge float64
}

// NaturalPopulation is one row of the NPA summary. The occupancy
// breakdown fields are nil when the log did not print them; nil and
// zero are different answers.
type NaturalPopulation struct {
	Atom    int
	Charge  float64
	Core    *float64
	Valence *float64
	Rydberg *float64
	Total   *float64
}

// PopulationRecord is the outcome of one population-analysis printing.
type PopulationRecord struct {
	Scheme  ChargeScheme
	Charges []AtomicCharge
	Natural []NaturalPopulation // NPA only
	Dipole  *Dipole             // ESP fits restate the fitted dipole
}

type Dipole struct {
	X, Y, Z, Total float64
}

type Quadrupole struct {
	XX, YY, ZZ, XY, XZ, YZ float64
}

// MultipoleMoments holds whichever moment orders the log printed.
// Higher orders are kept as component-label maps since their component
// sets vary by program version.
type MultipoleMoments struct {
	Dipole              *Dipole
	Quadrupole          *Quadrupole
	TracelessQuadrupole *Quadrupole
	Octapole            map[string]float64
	Hexadecapole        map[string]float64
}

type TerminationStatus string

const (
	TerminationNormal   TerminationStatus = "normal"
	TerminationAbnormal TerminationStatus = "abnormal"
)

// JobMetadata collects the labeled key-value facts scattered through
// the preamble and epilogue of a log.
type JobMetadata struct {
	Route        string
	Method       string
	BasisSet     string
	Title        string
	Charge       int
	Multiplicity int
	Version      string
	Termination  TerminationStatus
	CPUTime      time.Duration
	ElapsedTime  time.Duration
}

// Diagnostic is one non-fatal finding attached to the Report. Lines are
// 1-based positions in the source stream.
type Diagnostic struct {
	Section SectionKind
	Line    int
	EndLine int
	Cause   string
}

// Report is the root aggregate built by Parse. It is immutable once
// returned; re-parsing the same bytes yields an identical value.
type Report struct {
	Atoms        []Atom
	Geometries   []GeometryBlock
	Basis        *BasisSummary
	Orbitals     []OrbitalSet
	Populations  []PopulationRecord
	Multipoles   *MultipoleMoments
	Metadata     JobMetadata
	Completeness map[SectionKind]Presence
	Diagnostics  []Diagnostic
}

// Atom returns the canonical atom with the given 1-based index.
func (r *Report) Atom(index int) (Atom, bool) {
	if index < 1 || index > len(r.Atoms) {
		return Atom{}, false
	}
	return r.Atoms[index-1], true
}

// Geometry returns the first geometry block with the given orientation
// label, e.g. "Standard".
func (r *Report) Geometry(orientation string) (GeometryBlock, bool) {
	for _, g := range r.Geometries {
		if g.Orientation == orientation {
			return g, true
		}
	}
	return GeometryBlock{}, false
}

// Population returns the first population record for the given scheme.
func (r *Report) Population(scheme ChargeScheme) (PopulationRecord, bool) {
	for _, p := range r.Populations {
		if p.Scheme == scheme {
			return p, true
		}
	}
	return PopulationRecord{}, false
}

// Charges returns the per-atom charges of the first record for the
// given scheme, or nil when that scheme is not present.
func (r *Report) Charges(scheme ChargeScheme) []AtomicCharge {
	p, ok := r.Population(scheme)
	if !ok {
		return nil
	}
	return p.Charges
}

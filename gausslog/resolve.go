package gausslog

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// chargeSumTolerance bounds how far the per-atom charges of a scheme
// may drift from the net molecular charge before the parse flags its
// own arithmetic. This is a self-check on the extraction, not a
// physics check.
const chargeSumTolerance = 1e-4

// resolve is the second, light pass over the assembled report: it binds
// atom-indexed rows to the canonical atom list and runs the
// cross-section consistency checks. Dangling references drop the
// containing sub-record; every other finding is a diagnostic only.
func resolve(rep *Report) {
	kept := rep.Populations[:0]
	for _, p := range rep.Populations {
		if dangling := danglingIndex(p, len(rep.Atoms)); dangling > 0 {
			err := &DanglingAtomReferenceError{Section: sectionForScheme(p.Scheme), Atom: dangling}
			rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
				Section: sectionForScheme(p.Scheme),
				Cause:   err.Error(),
			})
			rep.Completeness[sectionForScheme(p.Scheme)] = FoundWithError
			continue
		}
		if p.Scheme != MullikenSummed && p.Scheme != ESPSummed && len(p.Charges) != len(rep.Atoms) {
			rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
				Section: sectionForScheme(p.Scheme),
				Cause: fmt.Sprintf("%s table has %d rows for %d atoms",
					p.Scheme, len(p.Charges), len(rep.Atoms)),
			})
		}
		checkChargeSum(rep, p)
		kept = append(kept, p)
	}
	rep.Populations = kept

	if rep.Basis != nil {
		checkBasisTotals(rep)
	}
	if rep.Multipoles != nil && rep.Multipoles.Dipole != nil {
		checkDipoleMagnitude(rep, rep.Multipoles.Dipole)
	}
}

func danglingIndex(p PopulationRecord, atomCount int) int {
	for _, c := range p.Charges {
		if c.Atom < 1 || c.Atom > atomCount {
			return c.Atom
		}
	}
	return 0
}

func sectionForScheme(scheme ChargeScheme) SectionKind {
	switch scheme {
	case ESP, ESPSummed:
		return SectionESPCharges
	case NPA:
		return SectionNaturalPopulation
	default:
		return SectionMulliken
	}
}

// checkChargeSum verifies that the per-atom charges of a full scheme
// sum to the stated net charge. Summed-hydrogen variants cover the same
// electrons with fewer rows, so they are checked too; schemes are only
// checked when the metadata stated a net charge at all.
func checkChargeSum(rep *Report, p PopulationRecord) {
	if rep.Completeness[SectionMetadata] != Found {
		return
	}
	qs := make([]float64, len(p.Charges))
	for i, c := range p.Charges {
		qs[i] = c.Charge
	}
	sum := floats.Sum(qs)
	if !scalar.EqualWithinAbs(sum, float64(rep.Metadata.Charge), chargeSumTolerance) {
		rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
			Section: sectionForScheme(p.Scheme),
			Cause: fmt.Sprintf("%s charges sum to %.6f, stated net charge is %d",
				p.Scheme, sum, rep.Metadata.Charge),
		})
	}
}

func checkBasisTotals(rep *Report) {
	if len(rep.Basis.BySymmetry) == 0 || rep.Basis.BasisFunctions == 0 {
		return
	}
	total := 0
	for _, n := range rep.Basis.BySymmetry {
		total += n
	}
	if total != rep.Basis.BasisFunctions {
		rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
			Section: SectionBasisSummary,
			Cause: fmt.Sprintf("per-symmetry counts sum to %d, stated total is %d",
				total, rep.Basis.BasisFunctions),
		})
	}
}

func checkDipoleMagnitude(rep *Report, d *Dipole) {
	norm := floats.Norm([]float64{d.X, d.Y, d.Z}, 2)
	if !scalar.EqualWithinAbs(norm, d.Total, chargeSumTolerance) {
		rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
			Section: SectionMultipole,
			Cause: fmt.Sprintf("dipole components give magnitude %.4f, stated total is %.4f",
				norm, d.Total),
		})
	}
}

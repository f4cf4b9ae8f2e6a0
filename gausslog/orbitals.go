package gausslog

import (
	"fmt"
	"strings"
)

// orbitalSymmetries is the outcome of one "Orbital symmetries:" block,
// held by the aggregator until the eigenvalue run it annotates arrives.
type orbitalSymmetries struct {
	occupied []string
	virtual  []string
}

func extractOrbitalSymmetries(lines []string, span Span) (*orbitalSymmetries, error) {
	syms := &orbitalSymmetries{}
	var current *[]string
	for j := span.Start + 1; j < span.End; j++ {
		for _, tok := range strings.Fields(lines[j]) {
			switch {
			case tok == "Occupied":
				current = &syms.occupied
			case tok == "Virtual":
				current = &syms.virtual
			case strings.HasPrefix(tok, "("):
				if current == nil {
					return nil, &SectionParseError{
						Section: SectionOrbitalSymmetries, Line: j + 1,
						Err: fmt.Errorf("symmetry label before Occupied or Virtual marker"),
					}
				}
				*current = append(*current, strings.Trim(tok, "()"))
			default:
				return nil, &SectionParseError{
					Section: SectionOrbitalSymmetries, Line: j + 1,
					Err: fmt.Errorf("unexpected token %q", tok),
				}
			}
		}
	}
	if len(syms.occupied) == 0 && len(syms.virtual) == 0 {
		return nil, &SectionParseError{
			Section: SectionOrbitalSymmetries, Line: span.Start + 1,
			Err: fmt.Errorf("no symmetry labels"),
		}
	}
	return syms, nil
}

type orbitalRun struct {
	spin     Spin
	occupied bool
	values   []float64
}

// extractOrbitalEnergies decodes one contiguous eigenvalue region into
// one orbital set per spin channel. A run starts at a labeled line such
// as "Alpha  occ. eigenvalues --"; unlabeled rows of plain numbers are
// wrapped continuations of the run before them.
func extractOrbitalEnergies(lines []string, span Span) ([]OrbitalSet, error) {
	var runs []*orbitalRun
	for j := span.Start; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		if idx := strings.Index(t, "eigenvalues --"); idx >= 0 {
			label := t[:idx]
			run := &orbitalRun{}
			switch {
			case strings.Contains(label, "Beta"):
				run.spin = SpinBeta
			default:
				run.spin = SpinAlpha
			}
			switch {
			case strings.Contains(label, "occ."):
				run.occupied = true
			case strings.Contains(label, "virt."):
				run.occupied = false
			default:
				return nil, &SectionParseError{
					Section: SectionOrbitalEnergies, Line: j + 1,
					Err: fmt.Errorf("run label %q is neither occupied nor virtual", strings.TrimSpace(label)),
				}
			}
			vals, err := ParseFloatFields(t[idx+len("eigenvalues --"):])
			if err != nil {
				return nil, &SectionParseError{Section: SectionOrbitalEnergies, Line: j + 1, Err: err}
			}
			run.values = vals
			runs = append(runs, run)
			continue
		}
		// Continuation row.
		if len(runs) == 0 {
			return nil, &SectionParseError{
				Section: SectionOrbitalEnergies, Line: j + 1,
				Err: fmt.Errorf("continuation row before any labeled run"),
			}
		}
		vals, err := ParseFloatFields(t)
		if err != nil {
			return nil, &SectionParseError{Section: SectionOrbitalEnergies, Line: j + 1, Err: err}
		}
		last := runs[len(runs)-1]
		last.values = append(last.values, vals...)
	}
	return foldRuns(runs, span)
}

// foldRuns turns the run list into per-spin sets with contiguous
// 1-based indices, occupied before virtual.
func foldRuns(runs []*orbitalRun, span Span) ([]OrbitalSet, error) {
	var sets []OrbitalSet
	for _, spin := range []Spin{SpinAlpha, SpinBeta} {
		set := OrbitalSet{Spin: spin}
		sawVirtual := false
		for _, run := range runs {
			if run.spin != spin {
				continue
			}
			if run.occupied && sawVirtual {
				return nil, &SectionParseError{
					Section: SectionOrbitalEnergies, Line: span.Start + 1,
					Err: fmt.Errorf("occupied run after virtual run in %s channel", spin),
				}
			}
			if !run.occupied {
				sawVirtual = true
			}
			for _, v := range run.values {
				set.Orbitals = append(set.Orbitals, Orbital{
					Index:    len(set.Orbitals) + 1,
					Occupied: run.occupied,
					Energy:   v,
				})
			}
		}
		if len(set.Orbitals) > 0 {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

// applySymmetries annotates the orbitals of one set with the labels of
// the preceding symmetry block. Lengths can disagree when the block was
// elided; the mismatch is reported to the caller as a diagnostic.
func applySymmetries(set *OrbitalSet, syms *orbitalSymmetries) (mismatch bool) {
	occ, virt := 0, 0
	for i := range set.Orbitals {
		o := &set.Orbitals[i]
		if o.Occupied {
			if occ < len(syms.occupied) {
				o.Symmetry = syms.occupied[occ]
			} else {
				mismatch = true
			}
			occ++
		} else {
			if virt < len(syms.virtual) {
				o.Symmetry = syms.virtual[virt]
			} else {
				mismatch = true
			}
			virt++
		}
	}
	if occ != len(syms.occupied) || virt != len(syms.virtual) {
		mismatch = true
	}
	return mismatch
}

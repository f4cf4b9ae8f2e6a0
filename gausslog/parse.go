package gausslog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFile parses one Gaussian log from disk.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one complete log from r and builds its Report. The whole
// stream is buffered; logs are line-oriented and span extraction needs
// whole lines, not seekability.
//
// Every recoverable problem is absorbed into the Report's diagnostics
// and completeness summary. The only error returned, besides a failed
// read, is IncompleteJobError when no atom table could be extracted.
func Parse(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return ParseLines(splitLines(string(data)))
}

func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// ParseLines builds the Report from already-split lines.
func ParseLines(lines []string) (*Report, error) {
	rep := &Report{Completeness: newCompleteness()}
	meta := newMetadataBuilder()
	var pendingSyms *orbitalSymmetries

	for _, span := range Classify(lines) {
		switch span.Kind {
		case SectionGeometry:
			block, atoms, diags, err := extractGeometry(lines, span)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			rep.Diagnostics = append(rep.Diagnostics, diags...)
			bindAtoms(rep, atoms, span)
			rep.Geometries = append(rep.Geometries, block)
			found(rep, SectionGeometry)

		case SectionBasisSummary:
			sum, err := extractBasisSummary(lines, span)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			if rep.Basis == nil {
				rep.Basis = sum
			}
			found(rep, SectionBasisSummary)

		case SectionOrbitalSymmetries:
			syms, err := extractOrbitalSymmetries(lines, span)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			pendingSyms = syms
			found(rep, SectionOrbitalSymmetries)

		case SectionOrbitalEnergies:
			sets, err := extractOrbitalEnergies(lines, span)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			for i := range sets {
				if pendingSyms != nil {
					if applySymmetries(&sets[i], pendingSyms) {
						rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
							Section: SectionOrbitalEnergies,
							Line:    span.Start + 1, EndLine: span.End,
							Cause: "symmetry label count does not match orbital count",
						})
					}
				}
				rep.Orbitals = append(rep.Orbitals, sets[i])
			}
			pendingSyms = nil
			found(rep, SectionOrbitalEnergies)

		case SectionMulliken, SectionESPCharges:
			recd, diags, err := extractCharges(lines, span, span.Kind, rep.Atoms)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			rep.Diagnostics = append(rep.Diagnostics, diags...)
			rep.Populations = append(rep.Populations, recd)
			found(rep, span.Kind)

		case SectionNaturalPopulation:
			recd, diags, err := extractNaturalPopulation(lines, span, rep.Atoms)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			rep.Diagnostics = append(rep.Diagnostics, diags...)
			rep.Populations = append(rep.Populations, recd)
			found(rep, SectionNaturalPopulation)

		case SectionMultipole:
			mm, diags, err := extractMultipole(lines, span)
			if err != nil {
				fail(rep, span, err)
				continue
			}
			rep.Diagnostics = append(rep.Diagnostics, diags...)
			if rep.Multipoles == nil {
				rep.Multipoles = mm
			}
			found(rep, SectionMultipole)

		case SectionMetadata:
			rep.Diagnostics = append(rep.Diagnostics, meta.consume(lines, span)...)
			found(rep, SectionMetadata)
		}
	}

	rep.Metadata = meta.meta
	if !meta.seen {
		rep.Completeness[SectionMetadata] = Absent
	}

	resolve(rep)

	if len(rep.Atoms) == 0 {
		return nil, &IncompleteJobError{}
	}
	return rep, nil
}

func newCompleteness() map[SectionKind]Presence {
	m := make(map[SectionKind]Presence, 9)
	for _, k := range []SectionKind{
		SectionGeometry, SectionBasisSummary, SectionOrbitalSymmetries,
		SectionOrbitalEnergies, SectionMulliken, SectionESPCharges,
		SectionNaturalPopulation, SectionMultipole, SectionMetadata,
	} {
		m[k] = Absent
	}
	return m
}

// found upgrades a kind to Found unless an earlier occurrence already
// failed; found-with-error is sticky so callers cannot miss it.
func found(rep *Report, kind SectionKind) {
	if rep.Completeness[kind] != FoundWithError {
		rep.Completeness[kind] = Found
	}
}

func fail(rep *Report, span Span, err error) {
	rep.Completeness[span.Kind] = FoundWithError
	rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
		Section: span.Kind,
		Line:    span.Start + 1,
		EndLine: span.End,
		Cause:   err.Error(),
	})
}

// bindAtoms establishes the canonical atom list from the first
// successfully parsed orientation table and cross-checks every later
// one against it. Coordinates are kept either way; identity mismatches
// are diagnostics, since the first table is authoritative.
func bindAtoms(rep *Report, atoms []Atom, span Span) {
	if len(rep.Atoms) == 0 {
		rep.Atoms = atoms
		return
	}
	if len(atoms) != len(rep.Atoms) {
		rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
			Section: SectionGeometry,
			Line:    span.Start + 1, EndLine: span.End,
			Cause: fmt.Sprintf("orientation table has %d atoms, canonical list has %d",
				len(atoms), len(rep.Atoms)),
		})
		return
	}
	for i, a := range atoms {
		if a.AtomicNumber != rep.Atoms[i].AtomicNumber {
			err := &InconsistentAtomRecordError{
				Section: SectionGeometry, Atom: a.Index,
				Got: a.Symbol, Want: rep.Atoms[i].Symbol,
			}
			rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
				Section: SectionGeometry,
				Line:    span.Start + 1, EndLine: span.End,
				Cause:   err.Error(),
			})
		}
	}
}

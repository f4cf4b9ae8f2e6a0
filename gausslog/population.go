package gausslog

import (
	"fmt"
	"strconv"
	"strings"
)

// extractCharges decodes a Mulliken or ESP charge table. The anchor
// line selects the scheme; a "with hydrogens summed into heavy atoms"
// anchor yields the summed variant as its own record. Rows carrying a
// spin-density column keep only the charge. Row symbols are checked
// against the canonical atoms the report has so far; a mismatch keeps
// the row and records a diagnostic, since the index is authoritative.
func extractCharges(lines []string, span Span, section SectionKind, atoms []Atom) (PopulationRecord, []Diagnostic, error) {
	anchor := strings.TrimSpace(lines[span.Start])
	rec := PopulationRecord{Scheme: chargeScheme(section, anchor)}
	var diags []Diagnostic

	terminated := false
	for j := span.Start + 1; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		fields := strings.Fields(t)
		switch {
		case strings.HasPrefix(t, "Sum of"):
			terminated = true
		case strings.HasPrefix(t, "Charge="):
			d, err := parseFittedDipole(t)
			if err != nil {
				return rec, nil, &SectionParseError{Section: section, Line: j + 1, Err: err}
			}
			rec.Dipole = d
		case allInts(fields):
			// Column-index header.
		default:
			if len(fields) < 3 {
				return rec, nil, &SectionParseError{
					Section: section, Line: j + 1,
					Err: fmt.Errorf("truncated charge row %q", t),
				}
			}
			idx, err := strconv.Atoi(fields[0])
			if err != nil {
				return rec, nil, &SectionParseError{Section: section, Line: j + 1, Err: err}
			}
			q, err := ParseFloat(fields[2])
			if err != nil {
				return rec, nil, &SectionParseError{Section: section, Line: j + 1, Err: err}
			}
			if d := checkRowSymbol(section, atoms, idx, fields[1], j+1); d != nil {
				diags = append(diags, *d)
			}
			rec.Charges = append(rec.Charges, AtomicCharge{Atom: idx, Charge: q})
		}
	}
	if !terminated {
		return rec, nil, &SectionParseError{
			Section: section, Line: span.End,
			Err: fmt.Errorf("table truncated before sum line"),
		}
	}
	if len(rec.Charges) == 0 {
		return rec, nil, &SectionParseError{
			Section: section, Line: span.Start + 1,
			Err: fmt.Errorf("no charge rows"),
		}
	}
	return rec, diags, nil
}

// checkRowSymbol cross-checks a row's element symbol against the
// canonical atom for its index. Out-of-range indices are left for the
// resolver pass, which has the complete table.
func checkRowSymbol(section SectionKind, atoms []Atom, idx int, symbol string, line int) *Diagnostic {
	if idx < 1 || idx > len(atoms) {
		return nil
	}
	want := atoms[idx-1].Symbol
	if symbol == want {
		return nil
	}
	err := &InconsistentAtomRecordError{Section: section, Atom: idx, Got: symbol, Want: want}
	return &Diagnostic{Section: section, Line: line, EndLine: line, Cause: err.Error()}
}

func chargeScheme(section SectionKind, anchor string) ChargeScheme {
	summed := strings.Contains(anchor, "hydrogens summed")
	if section == SectionESPCharges {
		if summed {
			return ESPSummed
		}
		return ESP
	}
	if summed {
		return MullikenSummed
	}
	return Mulliken
}

func allInts(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

// parseFittedDipole reads the restated dipole an ESP fit prints:
// "Charge= 0.0000 Dipole= 0.0000 0.0000 0.0002 Tot= 0.0002".
func parseFittedDipole(t string) (*Dipole, error) {
	di := strings.Index(t, "Dipole=")
	if di < 0 {
		return nil, nil
	}
	vals, err := ParseFloatFields(strings.ReplaceAll(t[di+len("Dipole="):], "Tot=", " "))
	if err != nil {
		return nil, err
	}
	if len(vals) != 4 {
		return nil, fmt.Errorf("want 4 dipole values, got %d", len(vals))
	}
	return &Dipole{X: vals[0], Y: vals[1], Z: vals[2], Total: vals[3]}, nil
}

// extractNaturalPopulation decodes the NPA summary table. A row always
// carries the natural charge; the core, valence, Rydberg, and total
// occupancies stay nil when their columns were not printed, since not
// printed and printed-as-zero mean different things downstream.
func extractNaturalPopulation(lines []string, span Span, atoms []Atom) (PopulationRecord, []Diagnostic, error) {
	rec := PopulationRecord{Scheme: NPA}
	var diags []Diagnostic

	inRows := false
	terminated := false
	for j := span.Start + 1; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		switch {
		case t == "":
		case strings.HasPrefix(t, "* Total *"):
			terminated = true
		case strings.HasPrefix(t, "="):
		case isFence(t):
			inRows = true
		case !inRows:
			// Column headers before the first rule line.
		default:
			row, symbol, err := parseNPARow(t)
			if err != nil {
				return rec, nil, &SectionParseError{Section: SectionNaturalPopulation, Line: j + 1, Err: err}
			}
			if d := checkRowSymbol(SectionNaturalPopulation, atoms, row.Atom, symbol, j+1); d != nil {
				diags = append(diags, *d)
			}
			rec.Natural = append(rec.Natural, row)
			rec.Charges = append(rec.Charges, AtomicCharge{Atom: row.Atom, Charge: row.Charge})
		}
	}
	if !terminated {
		return rec, nil, &SectionParseError{
			Section: SectionNaturalPopulation, Line: span.End,
			Err: fmt.Errorf("table truncated before total row"),
		}
	}
	if len(rec.Natural) == 0 {
		return rec, nil, &SectionParseError{
			Section: SectionNaturalPopulation, Line: span.Start + 1,
			Err: fmt.Errorf("no population rows"),
		}
	}
	return rec, diags, nil
}

// parseNPARow decodes "C 1 -0.83066 1.99948 4.82679 0.00439 6.83066";
// the four occupancy columns are optional as a group.
func parseNPARow(t string) (NaturalPopulation, string, error) {
	fields := strings.Fields(t)
	if len(fields) != 3 && len(fields) != 7 {
		return NaturalPopulation{}, "", fmt.Errorf("want 3 or 7 columns, got %d in %q", len(fields), t)
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return NaturalPopulation{}, "", fmt.Errorf("atom index: %w", err)
	}
	vals := make([]float64, 0, 5)
	for _, f := range fields[2:] {
		v, err := ParseFloat(f)
		if err != nil {
			return NaturalPopulation{}, "", err
		}
		vals = append(vals, v)
	}
	row := NaturalPopulation{Atom: idx, Charge: vals[0]}
	if len(vals) == 5 {
		row.Core = &vals[1]
		row.Valence = &vals[2]
		row.Rydberg = &vals[3]
		row.Total = &vals[4]
	}
	return row, fields[0], nil
}

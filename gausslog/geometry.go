package gausslog

import (
	"fmt"
	"strconv"
	"strings"
)

// extractGeometry decodes one orientation table into a geometry block
// plus the atom identities stated by its rows. The caller decides
// whether those identities become canonical or are cross-checked
// against an earlier table.
func extractGeometry(lines []string, span Span) (GeometryBlock, []Atom, []Diagnostic, error) {
	anchor := strings.TrimSpace(lines[span.Start])
	block := GeometryBlock{
		Orientation: strings.TrimSuffix(anchor, " orientation:"),
	}
	var atoms []Atom
	var diags []Diagnostic

	fences := 0
	for j := span.Start + 1; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		if isFence(t) {
			fences++
			continue
		}
		if fences != 2 {
			continue // column headers
		}
		atom, coords, err := parseGeometryRow(t)
		if err != nil {
			return block, nil, nil, &SectionParseError{
				Section: SectionGeometry, Line: j + 1, Err: err,
			}
		}
		if atom.Index != len(atoms)+1 {
			return block, nil, nil, &SectionParseError{
				Section: SectionGeometry, Line: j + 1,
				Err: fmt.Errorf("center %d out of sequence, want %d", atom.Index, len(atoms)+1),
			}
		}
		if atom.Symbol == strconv.Itoa(atom.AtomicNumber) {
			diags = append(diags, Diagnostic{
				Section: SectionGeometry, Line: j + 1, EndLine: j + 1,
				Cause: fmt.Sprintf("unknown element %d, keeping numeric symbol", atom.AtomicNumber),
			})
		}
		atoms = append(atoms, atom)
		block.Coords = append(block.Coords, coords)
	}
	if fences < 3 {
		return block, nil, nil, &SectionParseError{
			Section: SectionGeometry, Line: span.End,
			Err: fmt.Errorf("table truncated before closing rule"),
		}
	}
	if len(atoms) == 0 {
		return block, nil, nil, &SectionParseError{
			Section: SectionGeometry, Line: span.Start + 1,
			Err: fmt.Errorf("no atom rows"),
		}
	}
	return block, atoms, diags, nil
}

// parseGeometryRow decodes one fixed-column row: center number, atomic
// number with an optional isotope tag, optional atomic type, and three
// coordinates in angstroms.
func parseGeometryRow(t string) (Atom, Vec3, error) {
	mass := 0
	if open := strings.Index(t, "(Iso="); open >= 0 {
		rel := strings.IndexByte(t[open:], ')')
		if rel < 0 {
			return Atom{}, Vec3{}, fmt.Errorf("unterminated isotope tag")
		}
		var err error
		mass, err = strconv.Atoi(t[open+5 : open+rel])
		if err != nil {
			return Atom{}, Vec3{}, fmt.Errorf("isotope tag: %w", err)
		}
		t = t[:open] + t[open+rel+1:]
	}
	vals, err := ParseFloatFields(t)
	if err != nil {
		return Atom{}, Vec3{}, err
	}
	// Columns are center, atomic number, atomic type, x, y, z; older
	// tables omit the type column.
	if len(vals) != 5 && len(vals) != 6 {
		return Atom{}, Vec3{}, fmt.Errorf("want 5 or 6 columns, got %d", len(vals))
	}
	z := int(vals[1])
	atom := Atom{
		Index:        int(vals[0]),
		Symbol:       SymbolForNumber(z),
		AtomicNumber: z,
		MassNumber:   mass,
	}
	n := len(vals)
	return atom, Vec3{X: vals[n-3], Y: vals[n-2], Z: vals[n-1]}, nil
}

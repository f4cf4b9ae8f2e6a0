package gausslog

import (
	"fmt"
	"strings"
)

// moment orders inside one multipole span.
const (
	momentDipole = iota
	momentQuadrupole
	momentTracelessQuadrupole
	momentOctapole
	momentHexadecapole
)

// extractMultipole decodes the dipole through hexadecapole block. Each
// order is parsed on its own: a bad component line spoils only its
// order, recorded as a diagnostic, and the remaining orders still
// extract. Higher orders are simply absent when the log stops early.
func extractMultipole(lines []string, span Span) (*MultipoleMoments, []Diagnostic, error) {
	components := map[int]map[string]float64{}
	failed := map[int]bool{}
	var diags []Diagnostic

	order := -1
	for j := span.Start; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		if o, ok := momentOrder(t); ok {
			order = o
			components[order] = map[string]float64{}
			continue
		}
		if order < 0 || failed[order] {
			continue
		}
		if err := parseComponents(t, components[order]); err != nil {
			failed[order] = true
			delete(components, order)
			diags = append(diags, Diagnostic{
				Section: SectionMultipole, Line: j + 1, EndLine: j + 1,
				Cause: err.Error(),
			})
		}
	}
	if len(components) == 0 {
		return nil, nil, &SectionParseError{
			Section: SectionMultipole, Line: span.Start + 1,
			Err: fmt.Errorf("no moment components"),
		}
	}

	mm := &MultipoleMoments{}
	if c, ok := components[momentDipole]; ok {
		d, err := dipoleFrom(c)
		if err != nil {
			diags = append(diags, Diagnostic{
				Section: SectionMultipole, Line: span.Start + 1, EndLine: span.End,
				Cause: err.Error(),
			})
		} else {
			mm.Dipole = d
		}
	}
	if c, ok := components[momentQuadrupole]; ok {
		mm.Quadrupole = quadrupoleFrom(c, &diags, span)
	}
	if c, ok := components[momentTracelessQuadrupole]; ok {
		mm.TracelessQuadrupole = quadrupoleFrom(c, &diags, span)
	}
	if c, ok := components[momentOctapole]; ok {
		mm.Octapole = c
	}
	if c, ok := components[momentHexadecapole]; ok {
		mm.Hexadecapole = c
	}
	return mm, diags, nil
}

func momentOrder(t string) (int, bool) {
	switch {
	case strings.HasPrefix(t, "Dipole moment"):
		return momentDipole, true
	case strings.HasPrefix(t, "Traceless Quadrupole moment"):
		return momentTracelessQuadrupole, true
	case strings.HasPrefix(t, "Quadrupole moment"):
		return momentQuadrupole, true
	case strings.HasPrefix(t, "Octapole moment"):
		return momentOctapole, true
	case strings.HasPrefix(t, "Hexadecapole moment"):
		return momentHexadecapole, true
	}
	return 0, false
}

// parseComponents reads alternating "LABEL=" and value tokens, also
// accepting the two glued as one token.
func parseComponents(t string, into map[string]float64) error {
	fields := strings.Fields(t)
	i := 0
	for i < len(fields) {
		f := fields[i]
		eq := strings.IndexByte(f, '=')
		if eq < 0 {
			return fmt.Errorf("component label missing in %q", t)
		}
		label := f[:eq]
		var tok string
		if eq+1 < len(f) {
			tok = f[eq+1:]
			i++
		} else {
			if i+1 >= len(fields) {
				return fmt.Errorf("component %s has no value", label)
			}
			tok = fields[i+1]
			i += 2
		}
		v, err := ParseFloat(tok)
		if err != nil {
			return err
		}
		into[label] = v
	}
	return nil
}

func dipoleFrom(c map[string]float64) (*Dipole, error) {
	for _, k := range []string{"X", "Y", "Z", "Tot"} {
		if _, ok := c[k]; !ok {
			return nil, fmt.Errorf("dipole component %s missing", k)
		}
	}
	return &Dipole{X: c["X"], Y: c["Y"], Z: c["Z"], Total: c["Tot"]}, nil
}

func quadrupoleFrom(c map[string]float64, diags *[]Diagnostic, span Span) *Quadrupole {
	for _, k := range []string{"XX", "YY", "ZZ", "XY", "XZ", "YZ"} {
		if _, ok := c[k]; !ok {
			*diags = append(*diags, Diagnostic{
				Section: SectionMultipole, Line: span.Start + 1, EndLine: span.End,
				Cause: fmt.Sprintf("quadrupole component %s missing", k),
			})
			return nil
		}
	}
	return &Quadrupole{
		XX: c["XX"], YY: c["YY"], ZZ: c["ZZ"],
		XY: c["XY"], XZ: c["XZ"], YZ: c["YZ"],
	}
}

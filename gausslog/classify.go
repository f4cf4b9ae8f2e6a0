package gausslog

import (
	"strconv"
	"strings"
)

// Span is the line range of one section occurrence. Start is inclusive,
// End exclusive, both 0-based offsets into the line slice.
type Span struct {
	Kind  SectionKind
	Start int
	End   int
}

// Classify walks the ordered lines of a log once and returns the spans
// of every section occurrence in source order. Lines belonging to no
// known section are covered by SectionUnclassified spans, one per
// contiguous run, so that nothing is silently dropped. Repeated
// occurrences of the same kind yield repeated spans, never merged.
func Classify(lines []string) []Span {
	var spans []Span
	gap := -1
	flush := func(upto int) {
		if gap >= 0 && gap < upto {
			spans = append(spans, Span{Kind: SectionUnclassified, Start: gap, End: upto})
		}
		gap = -1
	}
	i := 0
	for i < len(lines) {
		kind, end := matchSection(lines, i)
		if kind == SectionUnclassified {
			if gap < 0 {
				gap = i
			}
			i++
			continue
		}
		flush(i)
		spans = append(spans, Span{Kind: kind, Start: i, End: end})
		i = end
	}
	flush(len(lines))
	return spans
}

func matchSection(lines []string, i int) (SectionKind, int) {
	t := strings.TrimSpace(lines[i])
	switch {
	case strings.HasSuffix(t, "orientation:"):
		return SectionGeometry, geometryEnd(lines, i)
	case strings.Contains(t, "symmetry adapted") && strings.Contains(t, "basis functions of"),
		strings.Contains(t, "basis functions,"):
		return SectionBasisSummary, basisEnd(lines, i)
	case t == "Orbital symmetries:":
		return SectionOrbitalSymmetries, symmetriesEnd(lines, i)
	case strings.Contains(t, "eigenvalues --"):
		return SectionOrbitalEnergies, eigenvaluesEnd(lines, i)
	case strings.HasPrefix(t, "Mulliken charges"):
		return SectionMulliken, chargesEnd(lines, i)
	case strings.HasPrefix(t, "ESP charges"), strings.HasPrefix(t, "Charges from ESP fit"):
		return SectionESPCharges, chargesEnd(lines, i)
	case t == "Summary of Natural Population Analysis:":
		return SectionNaturalPopulation, npaEnd(lines, i)
	case strings.HasPrefix(t, "Dipole moment"):
		return SectionMultipole, multipoleEnd(lines, i)
	case isMetadataLine(t):
		return SectionMetadata, i + 1
	case isFence(t):
		if end, ok := fencedEnd(lines, i); ok {
			return SectionMetadata, end
		}
	}
	return SectionUnclassified, i + 1
}

// isFence recognizes the dashed rule lines Gaussian draws around tables
// and around the route and title blocks.
func isFence(t string) bool {
	if len(t) < 4 {
		return false
	}
	for i := 0; i < len(t); i++ {
		if t[i] != '-' {
			return false
		}
	}
	return true
}

// fencedEnd matches a short fenced block (route or title): a fence, at
// most four content lines, and a closing fence.
func fencedEnd(lines []string, start int) (int, bool) {
	for j := start + 1; j < len(lines) && j <= start+5; j++ {
		t := strings.TrimSpace(lines[j])
		if isFence(t) {
			if j == start+1 {
				return 0, false
			}
			return j + 1, true
		}
		if t == "" {
			return 0, false
		}
	}
	return 0, false
}

// geometryEnd runs to the third fence after the anchor: the table is
// fence, two header lines, fence, rows, fence.
func geometryEnd(lines []string, start int) int {
	fences := 0
	for j := start + 1; j < len(lines); j++ {
		if isFence(strings.TrimSpace(lines[j])) {
			fences++
			if fences == 3 {
				return j + 1
			}
		}
	}
	return len(lines)
}

func basisEnd(lines []string, start int) int {
	j := start
	for j < len(lines) {
		t := strings.TrimSpace(lines[j])
		if (strings.Contains(t, "symmetry adapted") && strings.Contains(t, "basis functions of")) ||
			strings.Contains(t, "basis functions,") {
			j++
			continue
		}
		break
	}
	return j
}

func symmetriesEnd(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if strings.HasPrefix(t, "Occupied") || strings.HasPrefix(t, "Virtual") || strings.HasPrefix(t, "(") {
			continue
		}
		return j
	}
	return len(lines)
}

// eigenvaluesEnd consumes labeled eigenvalue lines plus the unlabeled
// continuation rows that wrap a long run.
func eigenvaluesEnd(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if strings.Contains(t, "eigenvalues --") || isNumericRow(t) {
			continue
		}
		return j
	}
	return len(lines)
}

func isNumericRow(t string) bool {
	if t == "" {
		return false
	}
	vals, err := ParseFloatFields(t)
	return err == nil && len(vals) > 0
}

// chargesEnd runs through the charge rows to the "Sum of ..." line, and
// past a trailing "Charge= ... Dipole= ..." restatement when one
// follows an ESP fit. A body line that is not a charge row ends the
// span early; the extractor then reports the truncation.
func chargesEnd(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if strings.HasPrefix(t, "Sum of") {
			end := j + 1
			if end < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[end]), "Charge=") {
				end++
			}
			return end
		}
		if !looksLikeChargeRow(t) {
			return j
		}
	}
	return len(lines)
}

// looksLikeChargeRow accepts the column-index header (all integers) and
// data rows (atom index, symbol, values).
func looksLikeChargeRow(t string) bool {
	fields := strings.Fields(t)
	if len(fields) == 0 {
		return false
	}
	allInts := true
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			allInts = false
			break
		}
	}
	if allInts {
		return true
	}
	if len(fields) < 3 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}

// npaEnd runs through the NPA summary to its "* Total *" row.
func npaEnd(lines []string, start int) int {
	rows := false
	for j := start + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if strings.HasPrefix(t, "* Total *") {
			return j + 1
		}
		if t == "" && rows {
			return j
		}
		if t != "" && !strings.HasPrefix(t, "=") {
			rows = true
		}
	}
	return len(lines)
}

func multipoleEnd(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if strings.Contains(t, "moment (") || isMomentComponentLine(t) {
			continue
		}
		return j
	}
	return len(lines)
}

// isMomentComponentLine matches rows of axis-labeled components such as
// "XX= -8.3142 YY= ...". Labels are built from the axis letters plus
// the dipole's "Tot"; this keeps the "N-N=" energy line that follows
// the moments out of the span.
func isMomentComponentLine(t string) bool {
	fields := strings.Fields(t)
	if len(fields) == 0 {
		return false
	}
	eq := strings.IndexByte(fields[0], '=')
	if eq <= 0 {
		return false
	}
	label := fields[0][:eq]
	if label == "Tot" {
		return true
	}
	for i := 0; i < len(label); i++ {
		switch label[i] {
		case 'X', 'Y', 'Z':
		default:
			return false
		}
	}
	return true
}

func isMetadataLine(t string) bool {
	switch {
	case strings.HasPrefix(t, "#"):
		return true
	case strings.HasPrefix(t, "Charge =") && strings.Contains(t, "Multiplicity ="):
		return true
	case strings.HasPrefix(t, "Gaussian ") && strings.Contains(t, "Rev"):
		return true
	case strings.Contains(t, "termination of Gaussian"):
		return true
	case strings.HasPrefix(t, "Job cpu time"), strings.HasPrefix(t, "Elapsed time"):
		return true
	}
	return false
}

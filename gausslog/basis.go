package gausslog

import (
	"fmt"
	"strconv"
	"strings"
)

// extractBasisSummary accumulates the per-symmetry function counts and
// the totals line. Symmetry labels are stored as printed; labels the
// point group tables do not know are accepted as opaque strings.
func extractBasisSummary(lines []string, span Span) (*BasisSummary, error) {
	sum := &BasisSummary{BySymmetry: make(map[string]int)}
	seen := false
	for j := span.Start; j < span.End; j++ {
		t := strings.TrimSpace(lines[j])
		switch {
		case strings.Contains(t, "basis functions,"):
			if err := parseBasisTotals(t, sum); err != nil {
				return nil, &SectionParseError{Section: SectionBasisSummary, Line: j + 1, Err: err}
			}
			seen = true
		case strings.Contains(t, "symmetry adapted cartesian basis functions of"):
			// Cartesian breakdown precedes the pure one; only the pure
			// counts add up to the stated basis-function total.
		case strings.Contains(t, "symmetry adapted basis functions of"):
			count, label, err := parseSymmetryCount(t)
			if err != nil {
				return nil, &SectionParseError{Section: SectionBasisSummary, Line: j + 1, Err: err}
			}
			sum.BySymmetry[label] += count
			seen = true
		}
	}
	if !seen {
		return nil, &SectionParseError{
			Section: SectionBasisSummary, Line: span.Start + 1,
			Err: fmt.Errorf("no basis summary lines"),
		}
	}
	return sum, nil
}

// parseBasisTotals reads a line of the form
// "17 basis functions, 28 primitive gaussians, 18 cartesian basis functions".
func parseBasisTotals(t string, sum *BasisSummary) error {
	fields := strings.Fields(t)
	for i, f := range fields {
		if i == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[i-1])
		if err != nil {
			continue
		}
		switch {
		case f == "cartesian":
			sum.CartesianFunctions = n
		case f == "basis" && i+1 < len(fields) && strings.HasPrefix(fields[i+1], "functions"):
			sum.BasisFunctions = n
		case f == "primitive":
			sum.PrimitiveGaussians = n
		}
	}
	if sum.BasisFunctions == 0 {
		return fmt.Errorf("no basis function count in %q", t)
	}
	return nil
}

// parseSymmetryCount reads a line of the form
// "There are 9 symmetry adapted basis functions of A1 symmetry."
func parseSymmetryCount(t string) (int, string, error) {
	fields := strings.Fields(t)
	count := -1
	for i, f := range fields {
		if f == "symmetry" && i > 0 {
			n, err := strconv.Atoi(fields[i-1])
			if err == nil {
				count = n
			}
			break
		}
	}
	if count < 0 {
		return 0, "", fmt.Errorf("no function count in %q", t)
	}
	for i, f := range fields {
		if f == "of" && i+1 < len(fields) {
			return count, fields[i+1], nil
		}
	}
	return 0, "", fmt.Errorf("no symmetry label in %q", t)
}

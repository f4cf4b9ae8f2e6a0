package gausslog

import (
	"reflect"
	"testing"
)

func TestClassifyKinds(t *testing.T) {
	lines := []string{
		" Entering Gaussian System, Link 0=g09",
		" ----------------------------------",
		" #p B3LYP/6-31G* pop=(mk,npa)",
		" ----------------------------------",
		" Charge =  0 Multiplicity = 1",
		"                          Input orientation:",
		" ---------------------------------------------------------------------",
		" Center     Atomic      Atomic             Coordinates (Angstroms)",
		" Number     Number       Type             X           Y           Z",
		" ---------------------------------------------------------------------",
		"      1          6           0        0.000000    0.000000    0.000000",
		" ---------------------------------------------------------------------",
		" Stoichiometry    CH4",
		" Mulliken charges:",
		"               1",
		"     1  C   -0.437226",
		" Sum of Mulliken charges =   0.00000",
		" Normal termination of Gaussian 09 at Fri Aug  1 12:34:56 2024.",
	}
	want := []Span{
		{SectionUnclassified, 0, 1},
		{SectionMetadata, 1, 4},
		{SectionMetadata, 4, 5},
		{SectionGeometry, 5, 12},
		{SectionUnclassified, 12, 13},
		{SectionMulliken, 13, 17},
		{SectionMetadata, 17, 18},
	}
	got := Classify(lines)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClassifyRepeatedSectionsKeptSeparate(t *testing.T) {
	lines := append([]string{}, geometryLines("Input orientation:")...)
	lines = append(lines, geometryLines("Standard orientation:")...)
	spans := Classify(lines)
	count := 0
	for _, s := range spans {
		if s.Kind == SectionGeometry {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d geometry spans, want 2", count)
	}
}

func TestClassifyUnrecognizedLinesTagged(t *testing.T) {
	lines := []string{" one", " two", " three"}
	got := Classify(lines)
	want := []Span{{SectionUnclassified, 0, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func geometryLines(anchor string) []string {
	return []string{
		" " + anchor,
		" ---------------------------------------------------------------------",
		" Center     Atomic      Atomic             Coordinates (Angstroms)",
		" Number     Number       Type             X           Y           Z",
		" ---------------------------------------------------------------------",
		"      1          6           0        0.000000    0.000000    0.000000",
		"      2          1           0        0.000000    0.000000    1.090755",
		"      3          1           0        1.028506    0.000000   -0.363585",
		"      4          1           0       -0.514253   -0.890712   -0.363585",
		"      5          1           0       -0.514253    0.890712   -0.363585",
		" ---------------------------------------------------------------------",
	}
}

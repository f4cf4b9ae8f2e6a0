package gausslog

import (
	"testing"
)

func multipoleLines() []string {
	return []string{
		" Dipole moment (field-independent basis, Debye):",
		"    X=              0.0000    Y=              0.0000    Z=              0.0000  Tot=              0.0000",
		" Quadrupole moment (field-independent basis, Debye-Ang):",
		"   XX=             -8.3142   YY=             -8.3142   ZZ=             -8.3142",
		"   XY=              0.0000   XZ=              0.0000   YZ=              0.0000",
		" Traceless Quadrupole moment (field-independent basis, Debye-Ang):",
		"   XX=              0.0000   YY=              0.0000   ZZ=              0.0000",
		"   XY=              0.0000   XZ=              0.0000   YZ=              0.0000",
		" Octapole moment (field-independent basis, Debye-Ang**2):",
		"  XXX=              0.0000  YYY=              0.0000  ZZZ=              0.0000  XYY=              0.0000",
		"  XXY=              0.0000  XXZ=              0.0000  XZZ=              0.0000  YZZ=              0.0000",
		"  YYZ=              0.0000  XYZ=              0.7229",
		" Hexadecapole moment (field-independent basis, Debye-Ang**3):",
		" XXXX=            -14.6153 YYYY=            -14.6153 ZZZZ=            -14.6153 XXXY=              0.0000",
	}
}

func TestExtractMultipole(t *testing.T) {
	lines := multipoleLines()
	mm, diags, err := extractMultipole(lines, Span{Kind: SectionMultipole, Start: 0, End: len(lines)})
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if mm.Dipole == nil || mm.Dipole.Total != 0 {
		t.Errorf("dipole: got %+v", mm.Dipole)
	}
	if mm.Quadrupole == nil || mm.Quadrupole.XX != -8.3142 {
		t.Errorf("quadrupole: got %+v", mm.Quadrupole)
	}
	if mm.TracelessQuadrupole == nil || mm.TracelessQuadrupole.XX != 0 {
		t.Errorf("traceless quadrupole: got %+v", mm.TracelessQuadrupole)
	}
	if mm.Octapole["XYZ"] != 0.7229 {
		t.Errorf("octapole XYZ: got %v", mm.Octapole["XYZ"])
	}
	if mm.Hexadecapole["XXXX"] != -14.6153 {
		t.Errorf("hexadecapole XXXX: got %v", mm.Hexadecapole["XXXX"])
	}
}

// Lower orders extract even when the log stops after the dipole.
func TestExtractMultipoleDipoleOnly(t *testing.T) {
	lines := multipoleLines()[:2]
	mm, _, err := extractMultipole(lines, Span{Kind: SectionMultipole, Start: 0, End: 2})
	if err != nil {
		t.Fatal(err)
	}
	if mm.Dipole == nil {
		t.Fatal("dipole missing")
	}
	if mm.Quadrupole != nil || mm.Octapole != nil || mm.Hexadecapole != nil {
		t.Errorf("higher orders should be absent: %+v", mm)
	}
}

// A bad component line spoils only its own order.
func TestExtractMultipoleIsolatedOrderFailure(t *testing.T) {
	lines := []string{
		" Dipole moment (field-independent basis, Debye):",
		"    X=              0.0000    Y=              0.0000    Z=              0.0000  Tot=              0.0000",
		" Quadrupole moment (field-independent basis, Debye-Ang):",
		"   XX=            badvalue   YY=             -8.3142   ZZ=             -8.3142",
	}
	mm, diags, err := extractMultipole(lines, Span{Kind: SectionMultipole, Start: 0, End: len(lines)})
	if err != nil {
		t.Fatal(err)
	}
	if mm.Dipole == nil {
		t.Error("dipole should survive a quadrupole failure")
	}
	if mm.Quadrupole != nil {
		t.Error("failed quadrupole should be absent")
	}
	if len(diags) == 0 {
		t.Error("want a diagnostic for the failed order")
	}
}

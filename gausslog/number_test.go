package gausslog

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0.109307", 0.109307},
		{"-11.20255", -11.20255},
		{"1.23D+04", 12300.0},
		{"1.23d+04", 12300.0},
		{"1.23D04", 12300.0},
		{"1.23D4", 12300.0},
		{"4.23D-09", 4.23e-9},
		{"1.23e+04", 12300.0},
		{"1.23E+04", 12300.0},
		{"1.23-04", 1.23e-4},
		{"-2.17D-11", -2.17e-11},
		{"0.00D+00", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFloat(tt.input)
			if err != nil {
				t.Fatalf("ParseFloat(%q): %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-15*math.Abs(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// The Fortran marker must decode to exactly the value of the
// equivalent standard-notation token, not merely close to it.
func TestParseFloatMarkerRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"1.23D+04", "1.23e+04"},
		{"-9.876D-12", "-9.876e-12"},
		{"5.0D0", "5.0e0"},
		{"3.14159D+00", "3.14159e+00"},
	}
	for _, p := range pairs {
		d, err := ParseFloat(p[0])
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", p[0], err)
		}
		e, err := ParseFloat(p[1])
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", p[1], err)
		}
		if d != e {
			t.Errorf("%q decodes to %v, %q to %v", p[0], d, p[1], e)
		}
	}
}

func TestParseFloatMalformed(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "1.23DD+04", "--1.0"} {
		_, err := ParseFloat(input)
		var malformed *MalformedNumberError
		if !errors.As(err, &malformed) {
			t.Errorf("ParseFloat(%q): got %v, want MalformedNumberError", input, err)
		}
	}
}

func TestParseFloatFields(t *testing.T) {
	tests := []struct {
		input string
		want  []float64
	}{
		{"  0.000000    0.000000    1.090755", []float64{0, 0, 1.090755}},
		{"-0.123456-1.234567", []float64{-0.123456, -1.234567}},
		{"0.514253-0.890712", []float64{0.514253, -0.890712}},
		{"1.23D+04 -0.5", []float64{12300.0, -0.5}},
		{"1.23-04", []float64{1.23e-4}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFloatFields(tt.input)
			if err != nil {
				t.Fatalf("ParseFloatFields(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

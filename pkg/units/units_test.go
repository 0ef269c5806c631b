package units

import (
	"math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{name: "mm", input: "mm", want: MM},
		{name: "millimeters", input: "millimeters", want: MM},
		{name: "inch", input: "inch", want: Inch},
		{name: "inches (dialog spelling)", input: "inches", want: Inch},
		{name: "in", input: "in", want: Inch},
		{name: "mils unsupported", input: "mil", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseUnit(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUnit(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInchMMRoundTrip(t *testing.T) {
	for _, v := range []float64{0.001, 0.1, 1.0, 1.88, 25.4, 360.0, 12345.678} {
		got := MMToInch(InchToMM(v))
		if math.Abs(got-v) > 1e-9*v {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestUnitToMM(t *testing.T) {
	if got := Inch.ToMM(1.0); got != 25.4 {
		t.Errorf("Inch.ToMM(1) = %v, want 25.4", got)
	}
	if got := MM.ToMM(3.3); got != 3.3 {
		t.Errorf("MM.ToMM(3.3) = %v, want 3.3", got)
	}
	if got := Inch.FromMM(25.4); got != 1.0 {
		t.Errorf("Inch.FromMM(25.4) = %v, want 1", got)
	}
}

func TestInternalUnits(t *testing.T) {
	if got := MMToIU(1.0); got != 1000000 {
		t.Errorf("MMToIU(1) = %d, want 1000000", got)
	}
	if got := IUToMM(500000); got != 0.5 {
		t.Errorf("IUToMM(500000) = %v, want 0.5", got)
	}
}

func TestMilToMM(t *testing.T) {
	// 360 mil is the default distribute step.
	if got := MilToMM(360); math.Abs(got-9.144) > 1e-9 {
		t.Errorf("MilToMM(360) = %v, want 9.144", got)
	}
}

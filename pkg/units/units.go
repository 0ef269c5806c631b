// Package units provides coordinate unit conversion for board layout work.
// Table files and the board model use millimeters; KiCad stores coordinates
// internally in integer nanometers (internal units, IU).
package units

import "fmt"

// Conversion constants
const (
	MMPerInch = 25.4   // Millimeters per inch
	MMPerMil  = 0.0254 // Millimeters per mil (1/1000 inch)
	IUPerMM   = 1e6    // KiCad internal units (nanometers) per millimeter
)

// Unit identifies a user-facing length unit.
type Unit int

const (
	MM Unit = iota
	Inch
)

// ParseUnit converts a user-supplied unit name to a Unit. Common long
// spellings are accepted alongside the short forms.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "mm", "millimeters":
		return MM, nil
	case "in", "inch", "inches":
		return Inch, nil
	default:
		return MM, fmt.Errorf("unknown unit %q (expected mm or inch)", s)
	}
}

// String returns the canonical unit name.
func (u Unit) String() string {
	switch u {
	case Inch:
		return "inch"
	default:
		return "mm"
	}
}

// ToMM converts a value in this unit to millimeters.
func (u Unit) ToMM(v float64) float64 {
	if u == Inch {
		return InchToMM(v)
	}
	return v
}

// FromMM converts a value in millimeters to this unit.
func (u Unit) FromMM(v float64) float64 {
	if u == Inch {
		return MMToInch(v)
	}
	return v
}

// InchToMM converts inches to millimeters.
func InchToMM(in float64) float64 {
	return in * MMPerInch
}

// MMToInch converts millimeters to inches.
func MMToInch(mm float64) float64 {
	return mm / MMPerInch
}

// MilToMM converts mils (thousandths of an inch) to millimeters.
func MilToMM(mil float64) float64 {
	return mil * MMPerMil
}

// MMToIU converts millimeters to KiCad internal units (nanometers).
func MMToIU(mm float64) int64 {
	return int64(mm * IUPerMM)
}

// IUToMM converts KiCad internal units (nanometers) to millimeters.
func IUToMM(iu int64) float64 {
	return float64(iu) / IUPerMM
}

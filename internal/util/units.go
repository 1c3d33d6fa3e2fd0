package util

import "strings"

// Unit is a mass unit of a nutrient amount. NotMass carries scale 1 and is
// the fallback for unit names the parser does not recognize (kcal, IU, ...).
type Unit int

const (
	NotMass Unit = iota
	Gram
	Milligram
	Microgram
)

// Scale is the number of units per gram.
func (u Unit) Scale() float64 {
	switch u {
	case Milligram:
		return 1000
	case Microgram:
		return 1000000
	default:
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case Gram:
		return "g"
	case Milligram:
		return "mg"
	case Microgram:
		return "ug"
	default:
		return ""
	}
}

// ParseUnit maps a unit name from the API to a Unit. The second return value
// reports whether the name was recognized; unrecognized names coerce to
// NotMass so the amount passes through unscaled.
func ParseUnit(name string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "g":
		return Gram, true
	case "mg":
		return Milligram, true
	case "ug", "µg", "mcg":
		return Microgram, true
	default:
		return NotMass, false
	}
}

// Convert re-expresses amount from one unit in another. Converting a unit to
// itself returns the amount untouched, with no multiply/divide round trip.
func Convert(amount float64, from, to Unit) float64 {
	if from == to {
		return amount
	}
	return amount * to.Scale() / from.Scale()
}

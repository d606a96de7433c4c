package domain

import "strings"

// Unit is the closed set of measurement units an ingredient can use. The
// string value is the wire representation; Label is for presentation only.
type Unit string

const (
	UnitGram       Unit = "G"
	UnitMilliliter Unit = "ML"
	UnitKilogram   Unit = "KG"
	UnitLiter      Unit = "L"
	UnitTeaspoon   Unit = "TL"
	UnitTablespoon Unit = "EL"
	UnitPinch      Unit = "PRISE"
	UnitKnifeTip   Unit = "MESSERSPITZE"
	UnitCup        Unit = "TASSE"
	UnitGlass      Unit = "GLAS"
)

// Units lists every unit in declaration order.
var Units = []Unit{
	UnitGram,
	UnitMilliliter,
	UnitKilogram,
	UnitLiter,
	UnitTeaspoon,
	UnitTablespoon,
	UnitPinch,
	UnitKnifeTip,
	UnitCup,
	UnitGlass,
}

var unitLabels = map[Unit]string{
	UnitGram:       "Gram",
	UnitMilliliter: "Milliliter",
	UnitKilogram:   "Kilogram",
	UnitLiter:      "Liter",
	UnitTeaspoon:   "Teaspoon",
	UnitTablespoon: "Tablespoon",
	UnitPinch:      "Pinch",
	UnitKnifeTip:   "Knife tip",
	UnitCup:        "Cup",
	UnitGlass:      "Glass",
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label returns the human-readable name of u, or "" for unknown units.
func (u Unit) Label() string { return unitLabels[u] }

// ParseUnit matches s against the wire values. Matching is exact after
// trimming surrounding whitespace; the second result is false for unknown
// values.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.TrimSpace(s))
	return u, u.Valid()
}

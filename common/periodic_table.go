package common

import "fmt"

// PeriodicTable is the process-wide, read-only table of elements this
// module is aware of, keyed by chemical symbol.  It is populated once,
// at package initialisation, and never mutated afterwards: every
// lookup is safe for concurrent use.
var PeriodicTable map[string]*Element

// ElementSymbols maps an atomic number to its canonical symbol.  It is
// the inverse of `PeriodicTable`'s keys, held as a dense slice since
// atomic numbers are small, contiguous integers.
var ElementSymbols []string

func init() {
	elements := []*Element{
		{Number: 1, Symbol: "H", Name: "Hydrogen", Weight: 1.008, Valence: 1},
		{Number: 5, Symbol: "B", Name: "Boron", Weight: 10.811, Valence: 3},
		{Number: 6, Symbol: "C", Name: "Carbon", Weight: 12.011, Valence: 4},
		{Number: 7, Symbol: "N", Name: "Nitrogen", Weight: 14.007, Valence: 3, OxStates: []int8{-3, 3, 5}},
		{Number: 8, Symbol: "O", Name: "Oxygen", Weight: 15.999, Valence: 2},
		{Number: 9, Symbol: "F", Name: "Fluorine", Weight: 18.998, Valence: 1},
		{Number: 14, Symbol: "Si", Name: "Silicon", Weight: 28.086, Valence: 4},
		{Number: 15, Symbol: "P", Name: "Phosphorus", Weight: 30.974, Valence: 3, OxStates: []int8{3, 5}},
		{Number: 16, Symbol: "S", Name: "Sulfur", Weight: 32.065, Valence: 2, OxStates: []int8{2, 4, 6}},
		{Number: 17, Symbol: "Cl", Name: "Chlorine", Weight: 35.453, Valence: 1},
		{Number: 35, Symbol: "Br", Name: "Bromine", Weight: 79.904, Valence: 1},
		{Number: 53, Symbol: "I", Name: "Iodine", Weight: 126.904, Valence: 1},
	}

	PeriodicTable = make(map[string]*Element, len(elements))
	maxNum := uint8(0)
	for _, e := range elements {
		PeriodicTable[e.Symbol] = e
		if e.Number > maxNum {
			maxNum = e.Number
		}
	}

	ElementSymbols = make([]string, maxNum+1)
	for _, e := range elements {
		ElementSymbols[e.Number] = e.Symbol
	}
}

// IsValidOxidationState answers whether the given oxidation state is
// one this element is known to assume.  An element with no declared
// `OxStates` is treated as permissive: the only check possible without
// a reference list is that the state is non-zero when hydrogens are
// actually attached, which callers have already established before
// invoking this function.
func IsValidOxidationState(atNum uint8, state int8) (bool, error) {
	if int(atNum) >= len(ElementSymbols) || ElementSymbols[atNum] == "" {
		return false, fmt.Errorf("common: unknown atomic number %d", atNum)
	}

	el := PeriodicTable[ElementSymbols[atNum]]
	if len(el.OxStates) == 0 {
		return true, nil
	}

	for _, os := range el.OxStates {
		if os == state {
			return true, nil
		}
	}

	return false, fmt.Errorf("common: %s does not normally assume oxidation state %d", el.Symbol, state)
}

// HeteroatomReplacementPrefix answers the 'a' replacement-nomenclature
// prefix (P-23) for the given hetero element symbol, used by both the
// von Baeyer numbering stage and the morpheme service's systematic
// fallback.  Answers the empty string for carbon and for symbols this
// table does not recognise.
func HeteroatomReplacementPrefix(symbol string) string {
	switch symbol {
	case "O":
		return "oxa"
	case "N":
		return "aza"
	case "S":
		return "thia"
	case "P":
		return "phospha"
	case "Si":
		return "sila"
	case "B":
		return "bora"
	default:
		return ""
	}
}

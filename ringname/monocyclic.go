package ringname

import (
	"sort"
	"strconv"
	"strings"

	mol "github.com/RxnWeaver/iupac/molecule"
)

// nameMonocyclic names a single isolated ring, per the monocyclic
// naming rules: aromatic 6-carbon benzene, aromatic 6- and
// 5-membered heterocycles chosen by heteroatom identity/count/
// position, non-aromatic 3-6 membered heterocycles (with lactam/
// lactone retained names when the ring carries a carbonyl), and the
// plain `cyclo⟨alkane⟩` fallback (with an ene/yne ending but no bond
// locants) for carbocycles.
// Answers nil when none of these monocyclic rules applies (the caller
// then tries the polycyclic strategies).
func nameMonocyclic(r *mol.Ring, m *mol.Molecule, svc tableSource) *Name {
	n := r.Size()
	hetero := r.Heteroatoms(m)

	if r.IsAromatic() {
		if len(hetero) == 0 && n == 6 {
			return retainedMono("benzene", r)
		}
		if n == 6 {
			if name, locants := nameAromaticSixHetero(hetero, n); name != "" {
				return namedWithLocants(name, r, locants)
			}
		}
		if n == 5 {
			if name, locants := nameAromaticFiveHetero(hetero, n); name != "" {
				return namedWithLocants(name, r, locants)
			}
		}
		return nil
	}

	if len(hetero) == 1 && n >= 3 && n <= 6 {
		if name := nameSaturatedMonoHetero(hetero[0].Symbol, n, r.HasRingCarbonyl()); name != "" {
			return namedWithLocants(name, r, nil)
		}
	}

	if len(hetero) == 0 && n >= 3 {
		return nameCarbocycle(r, m, svc)
	}

	return nil
}

func retainedMono(name string, r *mol.Ring) *Name {
	return &Name{Base: name, Locants: positionalLocants(r)}
}

func namedWithLocants(name string, r *mol.Ring, heteroLocants map[int]string) *Name {
	loc := positionalLocants(r)
	het := make(map[uint16]string)
	atoms := r.Atoms()
	for idx, symbol := range heteroLocants {
		if idx >= 0 && idx < len(atoms) {
			het[atoms[idx]] = symbol
		}
	}
	return &Name{Base: name, Locants: loc, Heteroatoms: het}
}

// positionalLocants assigns 1..n to a ring's atoms in traversal order;
// the starting atom and direction are chosen by numbering rules
// elsewhere (this is the identity numbering a single monocyclic name
// carries before any caller-level optimization).
func positionalLocants(r *mol.Ring) map[uint16]string {
	out := make(map[uint16]string, r.Size())
	for i, aid := range r.Atoms() {
		out[aid] = strconv.Itoa(i + 1)
	}
	return out
}

// nameAromaticSixHetero chooses among pyridine/pyrimidine/pyrazine/
// pyridazine/triazine/tetrazine/oxazine/thiazine by heteroatom
// identity, count, and the pairwise ring-index difference (modulo
// ring size) between same-kind heteroatoms — invariant to the ring's
// starting point and traversal direction.
func nameAromaticSixHetero(hetero []mol.RingHeteroatom, n int) (string, map[int]string) {
	if len(hetero) == 0 {
		return "", nil
	}
	symbols := make([]string, len(hetero))
	for i, h := range hetero {
		symbols[i] = h.Symbol
	}
	sort.Strings(symbols)

	switch {
	case len(hetero) == 1 && symbols[0] == "N":
		return "pyridine", indexMap(hetero)
	case len(hetero) == 4 && allEqual(symbols, "N"):
		return "tetrazine", indexMap(hetero)
	case len(hetero) == 3 && allEqual(symbols, "N"):
		return "triazine", indexMap(hetero)
	case len(hetero) == 2 && allEqual(symbols, "N"):
		diff := ringDistance(hetero[0].Index, hetero[1].Index, n)
		switch diff {
		case 1:
			return "pyridazine", indexMap(hetero)
		case 2:
			return "pyrimidine", indexMap(hetero)
		default:
			return "pyrazine", indexMap(hetero)
		}
	case len(hetero) == 2 && contains(symbols, "O") && contains(symbols, "N"):
		return "oxazine", indexMap(hetero)
	case len(hetero) == 2 && contains(symbols, "S") && contains(symbols, "N"):
		return "thiazine", indexMap(hetero)
	}
	return "", nil
}

func nameAromaticFiveHetero(hetero []mol.RingHeteroatom, n int) (string, map[int]string) {
	if len(hetero) == 0 {
		return "", nil
	}
	symbols := make([]string, len(hetero))
	for i, h := range hetero {
		symbols[i] = h.Symbol
	}
	sort.Strings(symbols)

	if len(hetero) == 1 {
		switch symbols[0] {
		case "O":
			return "furan", indexMap(hetero)
		case "N":
			return "pyrrole", indexMap(hetero)
		case "S":
			return "thiophene", indexMap(hetero)
		}
		return "", nil
	}

	if len(hetero) == 2 {
		diff := ringDistance(hetero[0].Index, hetero[1].Index, n)
		switch {
		case allEqual(symbols, "N"):
			if diff == 2 {
				return "imidazole", indexMap(hetero)
			}
			return "pyrazole", indexMap(hetero)
		case contains(symbols, "O") && contains(symbols, "N"):
			if diff == 2 {
				return "oxazole", indexMap(hetero)
			}
			return "isoxazole", indexMap(hetero)
		case contains(symbols, "S") && contains(symbols, "N"):
			if diff == 2 {
				return "thiazole", indexMap(hetero)
			}
			return "isothiazole", indexMap(hetero)
		}
	}

	if len(hetero) == 3 && allEqual(symbols, "N") {
		return "triazole", indexMap(hetero)
	}
	if len(hetero) == 4 && allEqual(symbols, "N") {
		return "tetrazole", indexMap(hetero)
	}
	return "", nil
}

// ringDistance answers the shorter of the two circular index
// distances between positions i and j in an n-membered ring.
func ringDistance(i, j, n int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	if n-d < d {
		d = n - d
	}
	return d
}

func allEqual(ss []string, v string) bool {
	for _, s := range ss {
		if s != v {
			return false
		}
	}
	return true
}

func contains(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

func indexMap(hetero []mol.RingHeteroatom) map[int]string {
	out := make(map[int]string, len(hetero))
	for _, h := range hetero {
		out[h.Index] = h.Symbol
	}
	return out
}

// nameSaturatedMonoHetero names a non-aromatic 3-6 membered ring
// carrying exactly one heteroatom, including the lactam/lactone
// retained names when the ring also carries an internal carbonyl.
func nameSaturatedMonoHetero(symbol string, n int, hasCarbonyl bool) string {
	type entry struct{ ring3, ring4, ring5, ring6 string }
	table := map[string]entry{
		"O": {"oxirane", "oxetane", "oxolane", "oxane"},
		"N": {"azirane", "azetidine", "pyrrolidine", "piperidine"},
		"S": {"thiirane", "thietane", "thiolane", "thiane"},
	}
	e, ok := table[symbol]
	if !ok {
		return ""
	}

	var base string
	switch n {
	case 3:
		base = e.ring3
	case 4:
		base = e.ring4
	case 5:
		base = e.ring5
	case 6:
		base = e.ring6
	default:
		return ""
	}

	if !hasCarbonyl {
		return base
	}

	switch symbol {
	case "N":
		// Lactam: pyrrolidin-2-one, piperidin-2-one, and the smaller
		// rings' equivalents.
		stem := strings.TrimSuffix(base, "e")
		return stem + "-2-one"
	case "O":
		// Lactone: retained as "<stem>-2-one" too, since the oxolane/
		// oxane stem plus a ring carbonyl is conventionally cited the
		// same way as the lactam (the distinct "-olide" forms are a
		// further retained-name refinement left to the morpheme
		// table, not hard-coded here).
		stem := strings.TrimSuffix(base, "e")
		return stem + "-2-one"
	default:
		return base
	}
}

// nameCarbocycle names a non-aromatic, heteroatom-free monocyclic
// carbocycle: `cyclo⟨alkane⟩`, ending in yne, ene or a⟨n⟩ene by the
// count of in-ring triple and double bonds. No bond locants are
// inserted: two double bonds in a six-ring give "cyclohexadiene".
func nameCarbocycle(r *mol.Ring, m *mol.Molecule, svc tableSource) *Name {
	n := r.Size()
	stem, ok := svc.AlkaneStem(n)
	if !ok {
		return nil
	}

	doubles := r.DoubleBondCount(m)
	triples := r.TripleBondCount(m)

	base := "cyclo" + stem
	switch {
	case triples == 1:
		base += "yne"
	case doubles == 1:
		base += "ene"
	case doubles >= 2:
		base += "a" + multiplierWord(doubles) + "ene"
	default:
		base += "ane"
	}

	return &Name{Base: base, Locants: positionalLocants(r)}
}

func multiplierWord(n int) string {
	switch n {
	case 2:
		return "di"
	case 3:
		return "tri"
	case 4:
		return "tetra"
	default:
		return ""
	}
}

package ringname

import (
	"sort"
	"strconv"

	mol "github.com/RxnWeaver/iupac/molecule"
)

// nameFusedAromaticPerimeter is the terminal fused-aromatic strategy,
// tried when no retained name matched a multi-ring aromatic system: it
// still assigns perimeter-based locants and falls back to the generic
// `polycyclic_C⟨n⟩` base name, so a name-assembly layer downstream can
// at least render locants consistently even without a known skeleton
// name. Callers that already matched a retained name use
// `numberFusedPerimeter` directly instead (see `retainedPoly`).
func nameFusedAromaticPerimeter(rs *mol.RingSystem, sysRings []*mol.Ring, m *mol.Molecule, svc tableSource) *Name {
	locants := numberFusedPerimeter(rs, sysRings, m)
	if len(locants) == 0 {
		return nil
	}
	return &Name{Base: genericPolycyclicName(rs), Locants: locants}
}

// numberFusedPerimeter implements the fused-aromatic numbering
// recipe: (i) the outer perimeter is already computed by
// Component A (`RingSystem.Perimeter`, edges belonging to exactly one
// SSSR ring), (ii) the heteroatom set locates the walk's starting
// direction, (iii) the walk is tried from every start atom and in both
// directions, keeping whichever minimizes the sorted heteroatom locant
// vector, and (iv) any atom not reached by the perimeter walk (an
// interior fusion atom of a pericondensed system such as pyrene) is
// assigned the last perimeter locant with a letter suffix (a, b, ...
// in atom-ID order). Fusion atoms on the perimeter get plain numbers;
// no per-skeleton 4a/8a locant map is applied.
func numberFusedPerimeter(rs *mol.RingSystem, sysRings []*mol.Ring, m *mol.Molecule) map[uint16]string {
	perim := rs.Perimeter()
	if len(perim) == 0 {
		return nil
	}

	heteroSet := make(map[uint16]bool)
	for _, r := range sysRings {
		for _, h := range r.Heteroatoms(m) {
			heteroSet[h.AtomId] = true
		}
	}

	order := bestPerimeterRotation(perim, heteroSet)

	locants := make(map[uint16]string, len(rs.AtomIds()))
	for i, aid := range order {
		locants[aid] = strconv.Itoa(i + 1)
	}

	onPerimeter := make(map[uint16]bool, len(order))
	for _, aid := range order {
		onPerimeter[aid] = true
	}

	letter := byte('a')
	for _, aid := range rs.AtomIds() {
		if onPerimeter[aid] {
			continue
		}
		locants[aid] = strconv.Itoa(len(order)) + string(letter)
		letter++
	}

	return locants
}

func bestPerimeterRotation(perim []uint16, heteroSet map[uint16]bool) []uint16 {
	n := len(perim)
	var best []uint16
	var bestScore []int

	for _, reversed := range [2]bool{false, true} {
		for start := 0; start < n; start++ {
			order := rotatePerimeter(perim, start, reversed)
			score := heteroLocantScore(order, heteroSet)
			if best == nil || lexLessInt(score, bestScore) {
				best = order
				bestScore = score
			}
		}
	}
	return best
}

func rotatePerimeter(s []uint16, start int, reversed bool) []uint16 {
	n := len(s)
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if reversed {
			idx = (((start-i)%n)+n)%n
		}
		out[i] = s[idx]
	}
	return out
}

func heteroLocantScore(order []uint16, heteroSet map[uint16]bool) []int {
	var locs []int
	for i, a := range order {
		if heteroSet[a] {
			locs = append(locs, i+1)
		}
	}
	sort.Ints(locs)
	return locs
}

func lexLessInt(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

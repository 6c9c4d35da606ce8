package ringname

import (
	"sort"
	"strconv"
	"strings"

	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// MaxVonBaeyerBridges is a process-wide, startup-time tunable (the
// config package's RingAnalysis.MaxVonBaeyerBridges knob) bounding how
// many node-disjoint bridgehead paths the search below will pursue
// between any candidate pair of principal bridgeheads. Defaults to the
// spec-literal bound; only a config.Apply call at process start should
// change it.
var MaxVonBaeyerBridges = cmn.MaxVonBaeyerBridges

// vonBaeyerPrefixes maps SSSR rank (ring count of the system) to its
// multiplying prefix: bicyclo, tricyclo, ... decacyclo.
var vonBaeyerPrefixes = map[int]string{
	2: "bicyclo", 3: "tricyclo", 4: "tetracyclo", 5: "pentacyclo",
	6: "hexacyclo", 7: "heptacyclo", 8: "octacyclo", 9: "nonacyclo", 10: "decacyclo",
}

// secondaryBridge is a direct or short-cut connection between two
// already-numbered main-path atoms that is not itself one of the
// three main bridges.
type secondaryBridge struct {
	from, to uint16
	length   int // interior atom count; 0 for a direct bond.
}

// vbAssignment is one fully-built candidate numbering for a bridged
// polycyclic: the chosen bridgeheads, the three main bridges in their
// assigned traversal roles, the resulting atom order, and the
// secondary bridges detected against it.
type vbAssignment struct {
	alpha, omega uint16
	lengths      [3]int // L1, L2, L3 as assigned to the three roles (not necessarily sorted).
	order        []uint16
	secondary    []secondaryBridge
}

// nameVonBaeyer implements the von Baeyer numbering algorithm for a
// bridged polycyclic core: bridgehead enumeration,
// node-disjoint path search, the 6 (times 2, for bridgehead swap)
// tentative numberings, secondary-bridge detection, the heteroatom
// main-path rule, and lexicographic selection by criteria (a)-(c) and
// (e). Criteria (d) and (f) (principal-group and substituent locant
// sets) need information this package is never handed — functional
// group placement is Component C/E's domain — so ties that would be
// broken there are instead broken by criterion (e) alone. Ties left
// after (e) keep the assignment found first; only that one assignment
// is answered, and no tied set is exposed to callers.
func nameVonBaeyer(rs *mol.RingSystem, sysRings []*mol.Ring, m *mol.Molecule, svc tableSource) *Name {
	rank := len(sysRings)
	prefix, ok := vonBaeyerPrefixes[rank]
	if !ok || rank < 2 {
		return nil
	}

	candidates := findBridgeheadCandidates(sysRings, m)
	if len(candidates) < 2 {
		return nil
	}

	adj := ringSystemAdjacency(rs, m)
	heteroSet := make(map[uint16]bool)
	for _, r := range sysRings {
		for _, h := range r.Heteroatoms(m) {
			heteroSet[h.AtomId] = true
		}
	}

	type triple struct {
		alpha, omega uint16
		paths        [][]uint16
	}
	var triples []triple
	bestScore := []int{-1, -1, -1}

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			paths := findNodeDisjointPaths(adj, a, b, MaxVonBaeyerBridges)
			if len(paths) < MaxVonBaeyerBridges {
				continue
			}
			lens := pathLengths(paths)
			sort.Sort(sort.Reverse(sort.IntSlice(lens)))
			score := []int{lens[0] + lens[1], lens[2], lens[0]}
			switch lexCompareInt(score, bestScore) {
			case 1:
				bestScore = score
				triples = triples[:0]
				triples = append(triples, triple{a, b, paths})
			case 0:
				triples = append(triples, triple{a, b, paths})
			}
		}
	}
	if len(triples) == 0 {
		return nil
	}

	var best *vbAssignment
	for _, tr := range triples {
		for _, swap := range [2]bool{false, true} {
			alpha, omega := tr.alpha, tr.omega
			if swap {
				alpha, omega = omega, alpha
			}
			for _, perm := range permutations3 {
				p0, p1, p2 := tr.paths[perm[0]], tr.paths[perm[1]], tr.paths[perm[2]]
				if swap {
					p0, p1, p2 = reversePath(p0), reversePath(p1), reversePath(p2)
				}
				asn := buildAssignment(alpha, omega, [3][]uint16{p0, p1, p2})
				if !heteroatomsOnMainPaths(asn, heteroSet) {
					continue
				}
				detectSecondaryBridges(asn, adj)
				if best == nil || betterAssignment(asn, best, heteroSet) {
					best = asn
				}
			}
		}
	}
	if best == nil {
		return nil
	}

	order := best.order
	if len(heteroSet) == 0 {
		order = cyclicShiftOptimize(order, heteroSet)
	}

	totalAtoms := len(rs.AtomIds())
	stem, ok := svc.AlkaneStem(totalAtoms)
	if !ok {
		stem = "C" + strconv.Itoa(totalAtoms)
	}

	sortedLens := append([]int{}, best.lengths[:]...)
	sort.Sort(sort.Reverse(sort.IntSlice(sortedLens)))
	bracket := make([]string, 0, len(sortedLens)+len(best.secondary))
	for _, l := range sortedLens {
		bracket = append(bracket, strconv.Itoa(l))
	}
	for _, sb := range best.secondary {
		bracket = append(bracket, strconv.Itoa(sb.length))
	}

	base := prefix + "[" + strings.Join(bracket, ".") + "]" + stem + "ane"

	locants := make(map[uint16]string, len(order))
	for i, aid := range order {
		locants[aid] = strconv.Itoa(i + 1)
	}

	base = appendHeteroatomPrefix(base, order, sysRings, m, svc)
	base = appendAlkeneSuffix(base, order, sysRings, m)

	return &Name{Base: base, Locants: locants}
}

var permutations3 = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

func pathLengths(paths [][]uint16) []int {
	out := make([]int, len(paths))
	for i, p := range paths {
		out[i] = len(p) - 2
	}
	return out
}

func reversePath(p []uint16) []uint16 {
	out := make([]uint16, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// lexCompareInt answers 1 if a > b lexicographically, -1 if a < b, 0
// if equal (only the first len(b) elements are compared).
func lexCompareInt(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// buildAssignment composes a tentative numbering: alpha
// at position 1, then the first bridge's interior atoms, then omega,
// then the second bridge's interior atoms traversed from omega back
// toward alpha, then the third bridge's interior atoms.
func buildAssignment(alpha, omega uint16, paths [3][]uint16) *vbAssignment {
	order := []uint16{alpha}
	order = append(order, interiorOf(paths[0])...)
	order = append(order, omega)
	order = append(order, reverseInterior(paths[1])...)
	order = append(order, interiorOf(paths[2])...)

	return &vbAssignment{
		alpha:   alpha,
		omega:   omega,
		lengths: [3]int{len(paths[0]) - 2, len(paths[1]) - 2, len(paths[2]) - 2},
		order:   order,
	}
}

func interiorOf(path []uint16) []uint16 {
	if len(path) <= 2 {
		return nil
	}
	return append([]uint16(nil), path[1:len(path)-1]...)
}

func reverseInterior(path []uint16) []uint16 {
	in := interiorOf(path)
	out := make([]uint16, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func heteroatomsOnMainPaths(asn *vbAssignment, heteroSet map[uint16]bool) bool {
	onPath := make(map[uint16]bool, len(asn.order))
	for _, a := range asn.order {
		onPath[a] = true
	}
	for h := range heteroSet {
		if !onPath[h] {
			return false
		}
	}
	return true
}

// detectSecondaryBridges finds shortcuts within the chosen numbering:
// direct bonds between two non-adjacent main-path atoms, each recorded
// with length 0. Ring-system atoms the three main bridges never reached
// are not detected as bridges and get no place in the numbering.
func detectSecondaryBridges(asn *vbAssignment, adj map[uint16][]uint16) {
	onPath := make(map[uint16]int, len(asn.order))
	for i, a := range asn.order {
		onPath[a] = i
	}

	seen := make(map[[2]uint16]bool)
	for i, a := range asn.order {
		for _, nb := range adj[a] {
			j, ok := onPath[nb]
			if !ok {
				continue
			}
			if j <= i+1 && i <= j+1 {
				continue // consecutive on the main path, or self.
			}
			key := [2]uint16{a, nb}
			if a > nb {
				key = [2]uint16{nb, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			asn.secondary = append(asn.secondary, secondaryBridge{from: a, to: nb, length: 0})
		}
	}
	sort.Slice(asn.secondary, func(i, j int) bool {
		return onPath[asn.secondary[i].from] < onPath[asn.secondary[j].from]
	})
}

// betterAssignment implements criteria (b), (c) and (e) of the
// numbering-selection rule (criterion (a) is already enforced by the caller's triple
// selection; (d) and (f) are out of this package's scope, see
// `nameVonBaeyer`'s doc comment).
func betterAssignment(a, b *vbAssignment, heteroSet map[uint16]bool) bool {
	sa, sb := secondaryLocants(a), secondaryLocants(b)
	if c := lexCompareInt(sa, sb); c != 0 {
		return c < 0
	}

	ha, hb := heteroLocants(a, heteroSet), heteroLocants(b, heteroSet)
	if len(ha) > 0 || len(hb) > 0 {
		fa, fb := firstOrMax(ha), firstOrMax(hb)
		if fa != fb {
			return fa < fb
		}
		if c := lexCompareInt(ha, hb); c != 0 {
			return c < 0
		}
	}
	return false
}

func secondaryLocants(a *vbAssignment) []int {
	onPath := make(map[uint16]int, len(a.order))
	for i, v := range a.order {
		onPath[v] = i + 1
	}
	var out []int
	for _, sb := range a.secondary {
		out = append(out, onPath[sb.from], onPath[sb.to])
	}
	sort.Ints(out)
	return out
}

func heteroLocants(a *vbAssignment, heteroSet map[uint16]bool) []int {
	var out []int
	for i, v := range a.order {
		if heteroSet[v] {
			out = append(out, i+1)
		}
	}
	sort.Ints(out)
	return out
}

func firstOrMax(s []int) int {
	if len(s) == 0 {
		return int(^uint(0) >> 1) // max int: an empty vector never wins a "lowest" comparison.
	}
	return s[0]
}

// cyclicShiftOptimize implements the final cyclic-shift step: for a heteroatom-free
// system, try every rotation of the locant map (holding bridgehead
// identity fixed is not required once no heteroatom pins the
// numbering) and keep the rotation whose sequence of atom IDs, read in
// locant order, is lexicographically smallest. Principal-group locants
// are not considered.
// Per this repo's Open Question decision, this step never runs when
// heteroSet is non-empty; the caller already guards that.
func cyclicShiftOptimize(order []uint16, heteroSet map[uint16]bool) []uint16 {
	n := len(order)
	best := order
	bestScore := identityScore(order)
	for start := 1; start < n; start++ {
		rotated := make([]uint16, n)
		for i := 0; i < n; i++ {
			rotated[i] = order[(start+i)%n]
		}
		score := identityScore(rotated)
		if lexCompareInt(score, bestScore) < 0 {
			best = rotated
			bestScore = score
		}
	}
	return best
}

func identityScore(order []uint16) []int {
	out := make([]int, len(order))
	for i, v := range order {
		out[i] = int(v)
	}
	return out
}

func appendHeteroatomPrefix(base string, order []uint16, sysRings []*mol.Ring, m *mol.Molecule, svc tableSource) string {
	bySymbol := make(map[string][]int)
	for i, aid := range order {
		a := m.AtomWithId(aid)
		if a == nil || a.AtomicNumber() == 6 {
			continue
		}
		bySymbol[a.Symbol()] = append(bySymbol[a.Symbol()], i+1)
	}
	if len(bySymbol) == 0 {
		return base
	}

	symbols := make([]string, 0, len(bySymbol))
	for s := range bySymbol {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var parts []string
	for _, s := range symbols {
		positions := bySymbol[s]
		sort.Ints(positions)
		locs := make([]string, len(positions))
		for i, p := range positions {
			locs[i] = strconv.Itoa(p)
		}
		prefix, ok := svc.HeteroatomReplacementPrefix(s)
		if !ok {
			continue
		}
		mult := multiplierWord(len(positions))
		parts = append(parts, strings.Join(locs, ",")+"-"+mult+prefix)
	}
	if len(parts) == 0 {
		return base
	}
	return strings.Join(parts, "-") + base
}

func appendAlkeneSuffix(base string, order []uint16, sysRings []*mol.Ring, m *mol.Molecule) string {
	onPath := make(map[uint16]int, len(order))
	for i, a := range order {
		onPath[a] = i + 1
	}
	var locants []int
	seen := make(map[[2]uint16]bool)
	for _, r := range sysRings {
		for _, bid := range r.Bonds() {
			b := m.BondWithId(bid)
			if b == nil || b.Type() != cmn.BondTypeDouble {
				continue
			}
			a1, a2 := b.Atoms()
			key := [2]uint16{a1, a2}
			if a1 > a2 {
				key = [2]uint16{a2, a1}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if l1, ok := onPath[a1]; ok {
				locants = append(locants, l1)
			}
		}
	}
	if len(locants) == 0 {
		return base
	}
	sort.Ints(locants)
	strs := make([]string, len(locants))
	for i, l := range locants {
		strs[i] = strconv.Itoa(l)
	}
	suffix := strings.Replace(base, "ane", "-"+strings.Join(strs, ",")+"-ene", 1)
	return suffix
}

func findBridgeheadCandidates(sysRings []*mol.Ring, m *mol.Molecule) []uint16 {
	membership := make(map[uint16]int)
	for _, r := range sysRings {
		for _, a := range r.Atoms() {
			membership[a]++
		}
	}
	var out []uint16
	for aid, cnt := range membership {
		if cnt < 2 {
			continue
		}
		if a := m.AtomWithId(aid); a != nil && a.Degree() >= 3 {
			out = append(out, aid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func ringSystemAdjacency(rs *mol.RingSystem, m *mol.Molecule) map[uint16][]uint16 {
	atomSet := make(map[uint16]bool, len(rs.AtomIds()))
	for _, a := range rs.AtomIds() {
		atomSet[a] = true
	}
	adj := make(map[uint16][]uint16, len(atomSet))
	for aid := range atomSet {
		a := m.AtomWithId(aid)
		if a == nil {
			continue
		}
		for _, nb := range a.Neighbours() {
			if atomSet[nb] {
				adj[aid] = append(adj[aid], nb)
			}
		}
	}
	return adj
}

// findNodeDisjointPaths greedily finds up to `want` node-disjoint
// simple paths between from and to, longest first: each found
// path's interior atoms are excluded from the search for
// the next one.
func findNodeDisjointPaths(adj map[uint16][]uint16, from, to uint16, want int) [][]uint16 {
	blocked := make(map[uint16]bool)
	var paths [][]uint16
	for i := 0; i < want; i++ {
		p := longestSimplePath(adj, from, to, blocked)
		if p == nil {
			break
		}
		paths = append(paths, p)
		for _, a := range p {
			if a != from && a != to {
				blocked[a] = true
			}
		}
	}
	return paths
}

// longestSimplePath exhaustively searches for the longest simple path
// between start and end, avoiding any atom in blocked. Ring systems
// are small enough (a handful of fused rings) that exhaustive
// backtracking is acceptable here; this is never run against
// arbitrarily large graphs.
func longestSimplePath(adj map[uint16][]uint16, start, end uint16, blocked map[uint16]bool) []uint16 {
	var best []uint16
	visited := map[uint16]bool{start: true}
	path := []uint16{start}

	var dfs func(cur uint16)
	dfs = func(cur uint16) {
		for _, nb := range adj[cur] {
			if nb == end {
				path = append(path, nb)
				if len(path) > len(best) {
					best = append([]uint16(nil), path...)
				}
				path = path[:len(path)-1]
				continue
			}
			if visited[nb] || blocked[nb] {
				continue
			}
			visited[nb] = true
			path = append(path, nb)
			dfs(nb)
			path = path[:len(path)-1]
			visited[nb] = false
		}
	}
	dfs(start)
	return best
}

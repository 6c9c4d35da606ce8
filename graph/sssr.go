package graph

import (
	"sort"

	bits "github.com/willf/bitset"

	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// SSSR computes the Smallest Set of Smallest Rings for the given
// molecule, via a five-step algorithm:
//
//  1. Per connected component, a DFS spanning tree, classifying edges
//     as tree or back edges.
//  2. Per back edge, the fundamental cycle through the lowest common
//     ancestor of its endpoints.
//  3. A bounded BFS supplement for small rings (size <= MaxSSSRRingSize)
//     to guarantee minimal-size cycles are present even when the DFS
//     tree's fundamental cycles miss them.
//  4. Sort candidates by size ascending, then lexicographically by
//     sorted atom IDs.
//  5. Greedy GF(2) Gaussian elimination over edge-incidence vectors,
//     accepting a candidate iff it is linearly independent of those
//     already accepted, stopping at the cyclomatic rank.
//
// The result also installs each accepted ring's membership onto the
// molecule's atoms and bonds, and is cached nowhere: callers that need
// to re-run this after mutating a molecule (which the frozen naming
// pipeline never does) simply call it again.
//
// MaxSSSRRingSize and EnableBFSSupplement are process-wide, startup-time
// tunables (the config package's RingAnalysis knobs) rather than
// per-call parameters: SSSR runs inside the frozen naming pipeline,
// which never varies its ring-perception bounds request to request.
var (
	MaxSSSRRingSize     = cmn.MaxSSSRRingSize
	EnableBFSSupplement = true
)

func SSSR(m *mol.Molecule) []*mol.Ring {
	rank := CyclomaticRank(m)
	if rank == 0 {
		return nil
	}

	adj := Adjacency(m)

	candidates := fundamentalCycles(m, adj)
	if EnableBFSSupplement {
		candidates = append(candidates, boundedBFSCycles(m, adj, MaxSSSRRingSize)...)
	}
	candidates = dedupeCycles(candidates)

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return lexLess(candidates[i], candidates[j])
	})

	accepted := make([][]uint16, 0, rank)
	basis := make([]*bits.BitSet, 0, rank)

	for _, cyc := range candidates {
		if len(accepted) == rank {
			break
		}
		vec := cycleEdgeVector(m, cyc)
		if vec == nil {
			continue
		}
		if reduced, independent := reduceAgainstBasis(vec, basis); independent {
			accepted = append(accepted, cyc)
			basis = append(basis, reduced)
		}
	}

	rings := make([]*mol.Ring, 0, len(accepted))
	var id uint16
	for _, cyc := range accepted {
		r, err := mol.NewRing(m, id, cyc)
		if err != nil {
			continue
		}
		rings = append(rings, r)
		id++
	}

	systems := BuildRingSystems(m, rings)
	m.InstallRings(rings, systems)
	determineAromaticity(m, rings, systems)
	for _, rs := range systems {
		Perimeter(m, rs, rings)
	}
	return rings
}

// Analyze runs the full Component A pipeline over a frozen molecule
// and answers a ready-to-query `RingInfo`: SSSR, ring-system
// classification, aromaticity and perimeter computation, in that
// order. Most callers outside this package should use this instead of
// calling `SSSR` directly.
func Analyze(m *mol.Molecule) *RingInfo {
	SSSR(m)
	return NewRingInfo(m)
}

// CyclomaticRank answers |bonds| - |atoms| + |components|, the
// expected cardinality of the SSSR.
func CyclomaticRank(m *mol.Molecule) int {
	rank := m.BondCount() - m.AtomCount() + m.ComponentCount()
	if rank < 0 {
		return 0
	}
	return rank
}

// fundamentalCycles builds one DFS spanning forest (one tree per
// connected component) and, for each back edge found, extracts the
// fundamental cycle through the lowest common ancestor of its
// endpoints.
func fundamentalCycles(m *mol.Molecule, adj map[uint16][]uint16) [][]uint16 {
	parent := make(map[uint16]uint16)
	depth := make(map[uint16]int)
	visited := make(map[uint16]bool)
	var backEdges [][2]uint16

	var dfs func(root uint16)
	dfs = func(root uint16) {
		type frame struct {
			node, from uint16
			d          int
		}
		stack := []frame{{root, root, 0}}
		visited[root] = true
		depth[root] = 0
		parent[root] = root

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, n := range adj[f.node] {
				if n == f.from && !sawParallel(m, f.node, n) {
					continue
				}
				if !visited[n] {
					visited[n] = true
					parent[n] = f.node
					depth[n] = f.d + 1
					stack = append(stack, frame{n, f.node, f.d + 1})
				} else if n != f.from || sawParallel(m, f.node, n) {
					// Back edge (or a parallel edge to the parent):
					// record once per unordered pair, in traversal
					// order, to avoid double-counting.
					if depth[n] <= f.d {
						backEdges = append(backEdges, [2]uint16{f.node, n})
					}
				}
			}
		}
	}

	for _, a := range m.Atoms() {
		if !visited[a.Id()] {
			dfs(a.Id())
		}
	}

	cycles := make([][]uint16, 0, len(backEdges))
	for _, be := range backEdges {
		u, v := be[0], be[1]
		cyc := fundamentalCycleFor(u, v, parent, depth)
		if len(cyc) >= 3 {
			cycles = append(cycles, cyc)
		}
	}
	return cycles
}

// sawParallel answers whether more than one bond connects the two
// given atoms directly (a multi-bond between the same pair, e.g. a
// ring of size... no — this purely guards against treating the
// unique tree edge as its own back edge when a molecule has a
// genuine double bond between two atoms with no other ring path).
func sawParallel(m *mol.Molecule, a, b uint16) bool {
	count := 0
	for _, bd := range m.Bonds() {
		x, y := bd.Atoms()
		if (x == a && y == b) || (x == b && y == a) {
			count++
		}
	}
	return count > 1
}

// fundamentalCycleFor walks both endpoints of a back edge up to their
// lowest common ancestor in the DFS tree, producing the cyclic atom
// sequence u -> ... -> lca -> ... -> v -> u.
func fundamentalCycleFor(u, v uint16, parent map[uint16]uint16, depth map[uint16]int) []uint16 {
	pathU := []uint16{u}
	pathV := []uint16{v}

	pu, pv := u, v
	for depth[pu] > depth[pv] {
		pu = parent[pu]
		pathU = append(pathU, pu)
	}
	for depth[pv] > depth[pu] {
		pv = parent[pv]
		pathV = append(pathV, pv)
	}
	for pu != pv {
		pu = parent[pu]
		pathU = append(pathU, pu)
		pv = parent[pv]
		pathV = append(pathV, pv)
	}

	// pathU: u..lca, pathV: v..lca. Cycle = u..lca..v (reverse of
	// pathV minus lca) back to u.
	cyc := make([]uint16, 0, len(pathU)+len(pathV)-1)
	cyc = append(cyc, pathU...)
	for i := len(pathV) - 2; i >= 0; i-- {
		cyc = append(cyc, pathV[i])
	}
	return dedupeConsecutive(cyc)
}

func dedupeConsecutive(s []uint16) []uint16 {
	if len(s) == 0 {
		return s
	}
	out := []uint16{s[0]}
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// boundedBFSCycles supplements the fundamental-cycle set with every
// simple cycle of size <= maxSize discoverable via a bounded BFS from
// each atom. This guarantees the smallest rings around any given atom
// are present among the candidates even when the DFS tree's back-edge
// set alone would miss them (a known weakness of the pure
// fundamental-cycle approach on fused systems).
func boundedBFSCycles(m *mol.Molecule, adj map[uint16][]uint16, maxSize int) [][]uint16 {
	var cycles [][]uint16
	for _, b := range m.Bonds() {
		a1, a2 := b.Atoms()
		// Find shortest paths from a1 to a2 not using this bond
		// directly; each gives a candidate ring when closed by the
		// bond.
		path := shortestPathExcluding(adj, a1, a2, b.Id(), m, maxSize)
		if len(path) >= 3 {
			cycles = append(cycles, path)
		}
	}
	return cycles
}

// shortestPathExcluding finds a shortest path between two atoms using
// BFS, forbidding the direct bond given by its ID, and bounding
// overall path length.
func shortestPathExcluding(adj map[uint16][]uint16, from, to uint16, excludeBond uint16, m *mol.Molecule, maxLen int) []uint16 {
	type qnode struct {
		id   uint16
		path []uint16
	}
	visited := map[uint16]bool{from: true}
	queue := []qnode{{from, []uint16{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.path) >= maxLen {
			continue
		}

		for _, n := range adj[cur.id] {
			b := m.BondBetween(cur.id, n)
			if b != nil && b.Id() == excludeBond && cur.id == from && n == to {
				continue
			}
			if b != nil && b.Id() == excludeBond {
				continue
			}
			if n == to {
				return append(append([]uint16{}, cur.path...), n)
			}
			if !visited[n] {
				visited[n] = true
				queue = append(queue, qnode{n, append(append([]uint16{}, cur.path...), n)})
			}
		}
	}
	return nil
}

func dedupeCycles(cycles [][]uint16) [][]uint16 {
	seen := make(map[string]bool, len(cycles))
	out := make([][]uint16, 0, len(cycles))
	for _, c := range cycles {
		key := canonicalCycleKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func canonicalCycleKey(c []uint16) string {
	sorted := append([]uint16(nil), c...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := make([]byte, 0, len(sorted)*4)
	for _, v := range sorted {
		key = append(key, byte(v>>8), byte(v), ',')
	}
	return string(key)
}

func lexLess(a, b []uint16) bool {
	sa := append([]uint16(nil), a...)
	sb := append([]uint16(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if sa[i] != sb[i] {
			return sa[i] < sb[i]
		}
	}
	return len(sa) < len(sb)
}

// cycleEdgeVector answers the bitset of bond IDs comprising the given
// cyclic atom sequence, or nil if some consecutive pair is not
// actually bonded (a malformed candidate).
func cycleEdgeVector(m *mol.Molecule, cyc []uint16) *bits.BitSet {
	n := len(cyc)
	vec := bits.New(uint(len(m.Bonds())) + 1)
	for i := 0; i < n; i++ {
		a1, a2 := cyc[i], cyc[(i+1)%n]
		b := m.BondBetween(a1, a2)
		if b == nil {
			return nil
		}
		vec.Set(uint(b.Id()))
	}
	return vec
}

// reduceAgainstBasis fully reduces vec, over GF(2), against basis: it
// repeatedly XORs the current residue against whichever basis vector
// shares its highest set bit, until no basis vector matches (residue
// independent) or the residue is zero (dependent). basis is kept in
// reduced row-echelon form -- every accepted vector is itself the
// reduced residue, never the raw candidate -- so at most one basis
// vector can ever share a given highest bit, and the order basis is
// stored in does not matter. Returns the reduced residue (to be added
// to basis when independent) and whether vec was independent.
func reduceAgainstBasis(vec *bits.BitSet, basis []*bits.BitSet) (*bits.BitSet, bool) {
	work := vec.Clone()
	for {
		hw, okw := highestBit(work)
		if !okw {
			return work, false
		}
		reducedThisPass := false
		for _, b := range basis {
			hb, okb := highestBit(b)
			if okb && hb == hw {
				work = work.SymmetricDifference(b)
				reducedThisPass = true
				break
			}
		}
		if !reducedThisPass {
			return work, true
		}
	}
}

func highestBit(b *bits.BitSet) (uint, bool) {
	found := false
	var last uint
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		last = i
		found = true
	}
	return last, found
}

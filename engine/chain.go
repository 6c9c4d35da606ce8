package engine

import (
	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// longestChainPath answers the longest simple path through the given
// atom set's induced subgraph, used as this repo's stand-in "principal
// chain" for the chain-analysis layer; see DESIGN.md for why a single
// candidate chain, rather than a full chain-enumeration subsystem, is
// in scope here.
func longestChainPath(m *mol.Molecule, atoms []uint16) []uint16 {
	set := atomSet(atoms)
	adj := make(map[uint16][]uint16, len(atoms))
	for _, aid := range atoms {
		a := m.AtomWithId(aid)
		if a == nil {
			continue
		}
		for _, nb := range a.Neighbours() {
			if set[nb] {
				adj[aid] = append(adj[aid], nb)
			}
		}
	}

	var best []uint16
	for _, start := range atoms {
		visited := map[uint16]bool{start: true}
		path := []uint16{start}
		var dfs func(cur uint16)
		dfs = func(cur uint16) {
			if len(path) > len(best) {
				best = append([]uint16(nil), path...)
			}
			for _, nb := range adj[cur] {
				if visited[nb] {
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
	}
	return best
}

// chainDoubleTripleLocants answers the 1-based locants (in the given
// traversal order) of every double or triple bond whose both atoms
// are adjacent on that chain.
func chainDoubleTripleLocants(m *mol.Molecule, order []uint16) []int {
	pos := make(map[uint16]int, len(order))
	for i, a := range order {
		pos[a] = i + 1
	}
	var out []int
	for i := 0; i+1 < len(order); i++ {
		b := m.BondBetween(order[i], order[i+1])
		if b == nil {
			continue
		}
		if b.Type() == cmn.BondTypeDouble || b.Type() == cmn.BondTypeTriple {
			out = append(out, i+1)
		}
	}
	return out
}

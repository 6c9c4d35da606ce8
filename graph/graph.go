// Package graph implements Component A of the nomenclature compiler:
// adjacency queries and canonical ring perception (SSSR), ring-system
// classification, aromaticity determination, and perimeter/ring-info
// queries over a `molecule.Molecule`.
//
// Everything here is a pure function of its molecule argument (plus,
// for the two analyses that mutate derived state, a one-time write of
// ring/aromaticity flags back onto that molecule's atoms and bonds,
// via the `molecule` package's own mutator methods). The only
// package-level mutable state is the pair of startup-time tunables in
// sssr.go (`MaxSSSRRingSize`, `EnableBFSSupplement`), which
// `config.Apply` sets; concurrent callers analysing distinct molecules
// never contend with one another.
package graph

import (
	mol "github.com/RxnWeaver/iupac/molecule"
)

// Adjacency answers, for each atom ID in the given molecule, the set
// of its neighbouring atom IDs (de-duplicated, bond-order collapsed).
func Adjacency(m *mol.Molecule) map[uint16][]uint16 {
	adj := make(map[uint16][]uint16, m.AtomCount())
	for _, b := range m.Bonds() {
		a1, a2 := b.Atoms()
		adj[a1] = appendUnique(adj[a1], a2)
		adj[a2] = appendUnique(adj[a2], a1)
	}
	for _, a := range m.Atoms() {
		if _, ok := adj[a.Id()]; !ok {
			adj[a.Id()] = nil
		}
	}
	return adj
}

func appendUnique(s []uint16, v uint16) []uint16 {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

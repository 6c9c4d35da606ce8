package molecule

import (
	"fmt"
	"sync"

	cmn "github.com/RxnWeaver/iupac/common"
)

// nextMolIdHolder assigns a globally-unique ID to each molecule.
type nextMolIdHolder struct {
	mu     sync.Mutex
	nextId uint32
}

var nextMolId nextMolIdHolder

func nextMoleculeId() uint32 {
	nextMolId.mu.Lock()
	defer nextMolId.mu.Unlock()

	nextMolId.nextId++
	return nextMolId.nextId
}

// Molecule represents a chemical molecule: an ordered sequence of
// atoms, an ordered sequence of bonds, and (once ring perception has
// run) an ordered sequence of rings and ring systems.
//
// A Molecule is immutable from the caller's point of view once
// `Freeze` has been called: the molecule reference must stay stable
// for the lifetime of a naming request, so the rule engine never
// mutates one. Construction still goes through the builder types
// below, which do mutate the molecule under construction; this is the
// one place the immutability invariant does not yet apply.
//
// A Molecule is a plain value with no actor goroutine of its own: the
// naming pipeline is single-threaded and suspension-free, so there is
// nothing here that needs an event loop or a request channel.
type Molecule struct {
	id uint32

	atoms       []*Atom
	bonds       []*Bond
	rings       []*Ring
	ringSystems []*RingSystem

	nextAtomIid      uint16
	nextBondId       uint16
	nextRingId       uint16
	nextRingSystemId uint16

	vendor           string
	vendorMoleculeId string
	attributes       []Attribute

	frozen bool
}

// New creates and initialises an empty molecule, ready to be built up
// via `NewAtomBuilder` / `NewBondBuilder`.
func New() *Molecule {
	m := new(Molecule)
	m.id = nextMoleculeId()

	m.atoms = make([]*Atom, 0, cmn.ListSizeLarge)
	m.bonds = make([]*Bond, 0, cmn.ListSizeLarge)
	m.rings = make([]*Ring, 0, cmn.ListSizeSmall)
	m.ringSystems = make([]*RingSystem, 0, cmn.ListSizeSmall)
	m.attributes = make([]Attribute, 0, cmn.ListSizeTiny)

	return m
}

// Id answers the globally-unique ID of this molecule.
func (m *Molecule) Id() uint32 { return m.id }

// Vendor and VendorMoleculeId answer the optional supplier
// identification this molecule was tagged with on ingestion.
func (m *Molecule) Vendor() string           { return m.vendor }
func (m *Molecule) VendorMoleculeId() string { return m.vendorMoleculeId }

// SetVendorInfo records optional supplier identification.
func (m *Molecule) SetVendorInfo(vendor, vendorMoleculeId string) {
	m.vendor = vendor
	m.vendorMoleculeId = vendorMoleculeId
}

// Attributes answers this molecule's (name, value) annotations.
func (m *Molecule) Attributes() []Attribute {
	out := make([]Attribute, len(m.attributes))
	copy(out, m.attributes)
	return out
}

// AddAttribute appends an annotation to this molecule.
func (m *Molecule) AddAttribute(name, value string) {
	m.attributes = append(m.attributes, Attribute{Name: name, Value: value})
}

// NewAtomBuilder answers a new atom builder bound to this molecule.
func (m *Molecule) NewAtomBuilder() *AtomBuilder { return &AtomBuilder{mol: m} }

// NewBondBuilder answers a new bond builder bound to this molecule.
func (m *Molecule) NewBondBuilder() *BondBuilder { return &BondBuilder{mol: m} }

// Freeze finalises this molecule: it runs per-atom unsaturation
// determination and marks the molecule as immutable. The rule engine
// calls this once, at naming-request entry, before constructing the
// initial `NamingContext`.
func (m *Molecule) Freeze() error {
	if m.frozen {
		return nil
	}
	for _, a := range m.atoms {
		if err := a.determineUnsaturation(); err != nil {
			return fmt.Errorf("molecule: freezing atom %d: %w", a.iId, err)
		}
	}
	m.frozen = true
	return nil
}

// IsFrozen answers whether this molecule has been finalised.
func (m *Molecule) IsFrozen() bool { return m.frozen }

// Atoms answers the ordered list of atoms in this molecule. The
// returned slice is a shallow copy; mutating the atoms it points to
// is still possible and is how upstream builders operate, but the
// slice header itself is safe to hold onto.
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, len(m.atoms))
	copy(out, m.atoms)
	return out
}

// Bonds answers the ordered list of bonds in this molecule.
func (m *Molecule) Bonds() []*Bond {
	out := make([]*Bond, len(m.bonds))
	copy(out, m.bonds)
	return out
}

// Rings answers the list of SSSR rings computed for this molecule, if
// ring perception has already run. Empty before that.
func (m *Molecule) Rings() []*Ring {
	out := make([]*Ring, len(m.rings))
	copy(out, m.rings)
	return out
}

// RingSystems answers the list of ring systems computed for this
// molecule.
func (m *Molecule) RingSystems() []*RingSystem {
	out := make([]*RingSystem, len(m.ringSystems))
	copy(out, m.ringSystems)
	return out
}

// AtomCount, BondCount answer the number of atoms / bonds.
func (m *Molecule) AtomCount() int { return len(m.atoms) }
func (m *Molecule) BondCount() int { return len(m.bonds) }

// AtomWithId answers the atom with the given (parser-assigned) ID, if
// found. Answers nil otherwise.
func (m *Molecule) AtomWithId(id uint16) *Atom {
	for _, a := range m.atoms {
		if a.iId == id {
			return a
		}
	}
	return nil
}

// AtomWithNormalisedId answers the atom with the given normalised ID,
// if found.
func (m *Molecule) AtomWithNormalisedId(id uint16) *Atom {
	for _, a := range m.atoms {
		if a.nId == id {
			return a
		}
	}
	return nil
}

// BondWithId answers the bond with the given ID, if found.
func (m *Molecule) BondWithId(id uint16) *Bond {
	for _, b := range m.bonds {
		if b.id == id {
			return b
		}
	}
	return nil
}

// RingWithId answers the ring with the given ID, if found.
func (m *Molecule) RingWithId(id uint16) *Ring {
	for _, r := range m.rings {
		if r.id == id {
			return r
		}
	}
	return nil
}

// RingSystemWithId answers the ring system with the given ID, if
// found.
func (m *Molecule) RingSystemWithId(id uint16) *RingSystem {
	for _, rs := range m.ringSystems {
		if rs.id == id {
			return rs
		}
	}
	return nil
}

// BondBetween answers the bond between the two given atoms (by
// parser-assigned ID), if one exists.
func (m *Molecule) BondBetween(a1, a2 uint16) *Bond {
	for _, b := range m.bonds {
		if (b.a1 == a1 && b.a2 == a2) || (b.a2 == a1 && b.a1 == a2) {
			return b
		}
	}
	return nil
}

// BondCountOfType answers the total number of bonds of the given type
// in this molecule.
func (m *Molecule) BondCountOfType(t cmn.BondType) int {
	c := 0
	for _, b := range m.bonds {
		if b.bType == t {
			c++
		}
	}
	return c
}

// ComponentCount answers the number of connected components in this
// molecule's graph, via a simple flood fill over the adjacency
// implied by its bonds. The SSSR algorithm needs this to compute the
// cyclomatic rank; it is exposed here since it is a property of the
// raw connection table, not of any ring analysis.
func (m *Molecule) ComponentCount() int {
	if len(m.atoms) == 0 {
		return 0
	}

	adj := make(map[uint16][]uint16, len(m.atoms))
	for _, b := range m.bonds {
		adj[b.a1] = append(adj[b.a1], b.a2)
		adj[b.a2] = append(adj[b.a2], b.a1)
	}

	visited := make(map[uint16]bool, len(m.atoms))
	components := 0
	for _, a := range m.atoms {
		if visited[a.iId] {
			continue
		}
		components++
		stack := []uint16{a.iId}
		visited[a.iId] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return components
}

// InstallRings installs the given SSSR rings and ring systems on this
// molecule, also back-filling each atom's and bond's ring membership.
// Called once, by the `graph` package's ring perception entry point.
func (m *Molecule) InstallRings(rings []*Ring, systems []*RingSystem) {
	m.replaceRings(rings, systems)
}

func (m *Molecule) replaceRings(rings []*Ring, systems []*RingSystem) {
	m.rings = rings
	m.ringSystems = systems

	for _, a := range m.atoms {
		a.rings = a.rings[:0]
	}
	for _, b := range m.bonds {
		b.rings = b.rings[:0]
	}

	for _, r := range m.rings {
		for _, aid := range r.atoms {
			if a := m.AtomWithId(aid); a != nil {
				a.addRing(r.id)
			}
		}
		for _, bid := range r.bonds {
			if b := m.BondWithId(bid); b != nil {
				b.addRing(r.id)
			}
		}
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	cmn "github.com/RxnWeaver/iupac/common"
	mol "github.com/RxnWeaver/iupac/molecule"
)

// connectionTable is the JSON shape cmd/namer reads from stdin: an
// already-parsed molfile/SMILES connection table. Parsing a molfile
// or SMILES string itself is out of scope for this CLI; it only
// consumes the result.
type connectionTable struct {
	Atoms []atomRecord `json:"atoms"`
	Bonds []bondRecord `json:"bonds"`
}

type atomRecord struct {
	Id       int    `json:"id"`
	Symbol   string `json:"symbol"`
	HCount   uint8  `json:"h_count"`
	Charge   int8   `json:"charge"`
	Aromatic bool   `json:"aromatic"`
}

type bondRecord struct {
	Id     int    `json:"id"`
	Atom1  int    `json:"atom1"`
	Atom2  int    `json:"atom2"`
	Type   string `json:"type"`
	Stereo string `json:"stereo,omitempty"`
}

// readConnectionTable decodes a connectionTable from r and builds a
// frozen *molecule.Molecule from it.
func readConnectionTable(r io.Reader) (*mol.Molecule, error) {
	var ct connectionTable
	if err := json.NewDecoder(r).Decode(&ct); err != nil {
		return nil, fmt.Errorf("namer: decoding connection table: %w", err)
	}

	m := mol.New()
	for _, a := range ct.Atoms {
		ab := m.NewAtomBuilder()
		if _, err := ab.New(a.Symbol, a.Id); err != nil {
			return nil, fmt.Errorf("namer: atom %d: %w", a.Id, err)
		}
		ab.HydrogenCount(a.HCount)
		ab.Charge(a.Charge)
		ab.Aromatic(a.Aromatic)
		if _, err := ab.Build(); err != nil {
			return nil, fmt.Errorf("namer: atom %d: %w", a.Id, err)
		}
	}

	for _, b := range ct.Bonds {
		bt, err := parseBondType(b.Type)
		if err != nil {
			return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
		}
		bb := m.NewBondBuilder()
		if _, err := bb.New(b.Id); err != nil {
			return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
		}
		if _, err := bb.Atoms(b.Atom1, b.Atom2); err != nil {
			return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
		}
		if _, err := bb.BondType(bt); err != nil {
			return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
		}
		if b.Stereo != "" {
			st, err := parseBondStereo(b.Stereo)
			if err != nil {
				return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
			}
			bb.BondStereo(st)
		}
		if _, err := bb.Build(); err != nil {
			return nil, fmt.Errorf("namer: bond %d: %w", b.Id, err)
		}
	}

	if err := m.Freeze(); err != nil {
		return nil, fmt.Errorf("namer: freezing molecule: %w", err)
	}
	return m, nil
}

func parseBondType(s string) (cmn.BondType, error) {
	switch s {
	case "single":
		return cmn.BondTypeSingle, nil
	case "double":
		return cmn.BondTypeDouble, nil
	case "triple":
		return cmn.BondTypeTriple, nil
	case "quadruple":
		return cmn.BondTypeQuadruple, nil
	case "aromatic":
		return cmn.BondTypeAromatic, nil
	case "altern":
		return cmn.BondTypeAltern, nil
	default:
		return cmn.BondTypeNone, fmt.Errorf("unrecognized bond type %q", s)
	}
}

func parseBondStereo(s string) (cmn.BondStereo, error) {
	switch s {
	case "up":
		return cmn.BondStereoUp, nil
	case "down":
		return cmn.BondStereoDown, nil
	case "either":
		return cmn.BondStereoEither, nil
	default:
		return cmn.BondStereoNone, fmt.Errorf("unrecognized bond stereo %q", s)
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cyclohexaneConnectionTable = `{
  "atoms": [
    {"id": 1, "symbol": "C", "h_count": 2},
    {"id": 2, "symbol": "C", "h_count": 2},
    {"id": 3, "symbol": "C", "h_count": 2},
    {"id": 4, "symbol": "C", "h_count": 2},
    {"id": 5, "symbol": "C", "h_count": 2},
    {"id": 6, "symbol": "C", "h_count": 2}
  ],
  "bonds": [
    {"id": 1, "atom1": 1, "atom2": 2, "type": "single"},
    {"id": 2, "atom1": 2, "atom2": 3, "type": "single"},
    {"id": 3, "atom1": 3, "atom2": 4, "type": "single"},
    {"id": 4, "atom1": 4, "atom2": 5, "type": "single"},
    {"id": 5, "atom1": 5, "atom2": 6, "type": "single"},
    {"id": 6, "atom1": 6, "atom2": 1, "type": "single"}
  ]
}`

func TestReadConnectionTableBuildsMolecule(t *testing.T) {
	m, err := readConnectionTable(strings.NewReader(cyclohexaneConnectionTable))
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestReadConnectionTableRejectsBadJSON(t *testing.T) {
	_, err := readConnectionTable(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestReadConnectionTableRejectsUnknownBondType(t *testing.T) {
	bad := `{"atoms":[{"id":1,"symbol":"C"},{"id":2,"symbol":"C"}],"bonds":[{"id":1,"atom1":1,"atom2":2,"type":"weird"}]}`
	_, err := readConnectionTable(strings.NewReader(bad))
	require.Error(t, err)
}

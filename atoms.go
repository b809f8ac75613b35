/*
 * atoms.go, part of godock.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package dock

import (
	"fmt"
	"math"

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
)

//Type is the docking type of an atom. It refines the element with the
//context the scoring terms care about: whether a carbon is hydrophobic,
//and whether a nitrogen or oxygen can donate and/or accept a hydrogen
//bond.
type Type uint8

const (
	Hydrogen Type = iota
	CarbonH       //carbon bonded only to carbon or hydrogen
	CarbonP       //carbon bonded to at least one heteroatom
	Nitrogen
	NitrogenD //donor
	NitrogenA //acceptor
	NitrogenDA
	Oxygen
	OxygenD
	OxygenA
	OxygenDA
	Sulfur
	Phosphorus
	Fluorine
	Chlorine
	Bromine
	Iodine
	MetalD
)

//NumTypes is the number of docking types. Callers precomputing
//per-type-pair tables should size them NumTypes*NumTypes.
const NumTypes = int(MetalD) + 1

var typeNames = []string{"H", "C_H", "C_P", "N", "N_D", "N_A", "N_DA",
	"O", "O_D", "O_A", "O_DA", "S", "P", "F", "Cl", "Br", "I", "Met_D"}

//Optimal contact radii, in A. Indexed by Type.
var typeRadii = []float64{1.2, 1.9, 1.9, 1.8, 1.8, 1.8, 1.8,
	1.7, 1.7, 1.7, 1.7, 2.0, 2.1, 1.5, 1.8, 2.0, 2.2, 1.2}

func (t Type) String() string {
	if int(t) >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

//Radius returns the optimal-contact radius for the type, in A. The sum
//of the radii of two atoms is the distance at which pairwise terms
//consider them to be in ideal contact.
func (t Type) Radius() float64 {
	if int(t) >= NumTypes {
		panic("godock: Radius called on an invalid docking type")
	}
	return typeRadii[t]
}

//IsHeavy returns true for every type except hydrogen.
func (t Type) IsHeavy() bool {
	return t != Hydrogen
}

//IsHydrophobic returns true for hydrophobic carbons and halogens.
func (t Type) IsHydrophobic() bool {
	switch t {
	case CarbonH, Fluorine, Chlorine, Bromine, Iodine:
		return true
	}
	return false
}

//IsDonor returns true for types that can donate a hydrogen bond.
func (t Type) IsDonor() bool {
	switch t {
	case NitrogenD, NitrogenDA, OxygenD, OxygenDA, MetalD:
		return true
	}
	return false
}

//IsAcceptor returns true for types that can accept a hydrogen bond.
func (t Type) IsAcceptor() bool {
	switch t {
	case NitrogenA, NitrogenDA, OxygenA, OxygenDA:
		return true
	}
	return false
}

//HBondPossible returns true if a hydrogen bond can form between atoms
//of types t1 and t2, in either direction.
func HBondPossible(t1, t2 Type) bool {
	return (t1.IsDonor() && t2.IsAcceptor()) || (t1.IsAcceptor() && t2.IsDonor())
}

//AtomBase carries the two per-atom values pairwise scoring terms can
//see: the docking type and the partial charge. It is the projection of
//an Atom used on the hot evaluation path, so it is a plain value type.
type AtomBase struct {
	Type   Type
	Charge float64
}

//Atom is a docking atom: its AtomBase plus the goChem atom it was typed
//from, which keeps the element, name and residue information available
//for reporting. A may be nil for atoms built directly from an AtomBase.
type Atom struct {
	AtomBase
	A *chem.Atom
}

//Base returns the type/charge projection of the atom.
func (at Atom) Base() AtomBase { return at.AtomBase }

//Covalent radii for bond detection while typing, in A.
//Values from goChem, originally from DOI:10.1186/1758-2946-3-33.
var covRadii = map[string]float64{
	"H": 0.4, "C": 0.76, "N": 0.71, "O": 0.66, "P": 1.07, "S": 1.05,
	"F": 0.57, "Cl": 1.02, "Br": 1.2, "I": 1.39,
	"Na": 1.66, "K": 2.03, "Mg": 1.41, "Ca": 1.76, "Mn": 1.61,
	"Fe": 1.52, "Co": 1.5, "Cu": 1.32, "Zn": 1.22,
}

var metals = map[string]bool{
	"Na": true, "K": true, "Mg": true, "Ca": true, "Mn": true,
	"Fe": true, "Co": true, "Cu": true, "Zn": true,
}

//Distance-criterion constants for bond detection, as in goChem's
//AssignBonds.
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Typed builds docking atoms for a goChem topology. Docking types are
//assigned from the element symbol and the bonded neighbors, which are
//detected with a simple covalent-radius distance criterion (similar to
//that of DOI:10.1186/1758-2946-3-33): a carbon bonded only to carbon
//and hydrogen is hydrophobic, a nitrogen or oxygen bonded to at least
//one hydrogen is a donor, and nitrogens and oxygens with a free valence
//are acceptors. Partial charges are taken from the goChem atoms.
//It returns an error if an atom's element has no docking type.
func Typed(mol chem.Atomer, coords *v3.Matrix) ([]Atom, error) {
	if mol == nil || coords == nil || coords.NVecs() != mol.Len() {
		panic("godock: Typed needs a topology and matching coordinates")
	}
	n := mol.Len()
	neigh := make([][]int, n)
	for i := 0; i < n; i++ {
		ci, ok := covRadii[mol.Atom(i).Symbol]
		if !ok {
			return nil, CError{fmt.Sprintf("godock: No covalent radius for element %s (atom %d)", mol.Atom(i).Symbol, i), []string{"Typed"}}
		}
		for j := i + 1; j < n; j++ {
			cj, ok := covRadii[mol.Atom(j).Symbol]
			if !ok {
				return nil, CError{fmt.Sprintf("godock: No covalent radius for element %s (atom %d)", mol.Atom(j).Symbol, j), []string{"Typed"}}
			}
			d := atomDistance(coords, i, j)
			if d > tooclose*(ci+cj) && d <= ci+cj+bondtol {
				neigh[i] = append(neigh[i], j)
				neigh[j] = append(neigh[j], i)
			}
		}
	}
	ret := make([]Atom, n)
	for i := 0; i < n; i++ {
		at := mol.Atom(i)
		t, err := typeFromSymbol(at.Symbol, i, mol, neigh[i])
		if err != nil {
			return nil, err
		}
		ret[i] = Atom{AtomBase{t, at.Charge}, at}
	}
	return ret, nil
}

func typeFromSymbol(symbol string, i int, mol chem.Atomer, neighbors []int) (Type, error) {
	hasH := false
	hetero := false
	for _, j := range neighbors {
		s := mol.Atom(j).Symbol
		if s == "H" {
			hasH = true
			continue
		}
		if s != "C" {
			hetero = true
		}
	}
	switch symbol {
	case "H":
		return Hydrogen, nil
	case "C":
		if hetero {
			return CarbonP, nil
		}
		return CarbonH, nil
	case "N":
		//a nitrogen with a full valence shell can't accept
		acc := len(neighbors) < 4
		switch {
		case hasH && acc:
			return NitrogenDA, nil
		case hasH:
			return NitrogenD, nil
		case acc:
			return NitrogenA, nil
		}
		return Nitrogen, nil
	case "O":
		if hasH {
			return OxygenDA, nil
		}
		return OxygenA, nil
	case "S":
		return Sulfur, nil
	case "P":
		return Phosphorus, nil
	case "F":
		return Fluorine, nil
	case "Cl":
		return Chlorine, nil
	case "Br":
		return Bromine, nil
	case "I":
		return Iodine, nil
	}
	if metals[symbol] {
		return MetalD, nil
	}
	return Hydrogen, CError{fmt.Sprintf("godock: No docking type for element %s (atom %d)", symbol, i), []string{"typeFromSymbol"}}
}

//atomDistance is the euclidean distance between vectors i and j of
//coords. It reads the matrix directly to avoid allocating views.
func atomDistance(coords *v3.Matrix, i, j int) float64 {
	dx := coords.At(i, 0) - coords.At(j, 0)
	dy := coords.At(i, 1) - coords.At(j, 1)
	dz := coords.At(i, 2) - coords.At(j, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

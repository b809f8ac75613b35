/*
 * model.go, part of godock.
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

	v3 "github.com/rmera/gochem/v3"
)

//AtomIndex identifies an atom within a Model. Receptor (rigid) atoms
//and movable atoms live in separate sequences, so an index is a
//position plus the sequence it refers to.
type AtomIndex struct {
	N        int
	Receptor bool
}

//Bond joins two movable atoms, identified by their positions in the
//movable sequence. Rotatable marks the bonds the conformational search
//can twist; they are what the torsion-counting features count.
type Bond struct {
	A, B      int
	Rotatable bool
}

//Ligand is a contiguous, half-open range [Begin,End) of movable atoms
//that were added together as one molecule.
type Ligand struct {
	Begin, End int
}

//Model is a docking system: a rigid receptor plus movable atoms
//(ligands, and possibly flexible side chains) with their bonds.
//Receptor coordinates never change; movable coordinates are replaced
//wholesale on each pose update with SetCoords.
type Model struct {
	receptor  []Atom
	recCoords *v3.Matrix
	movable   []Atom
	coords    *v3.Matrix
	bonds     []Bond
	adjacency [][]Bond //bonds touching each movable atom
	ligands   []Ligand
}

//NewModel returns a model with the given receptor atoms and
//coordinates, and no ligands yet. Both arguments may be nil/empty for
//a receptor-less model (say, scoring intra-ligand terms only).
func NewModel(receptor []Atom, coords *v3.Matrix) *Model {
	if len(receptor) > 0 && (coords == nil || coords.NVecs() != len(receptor)) {
		panic("godock: NewModel: receptor atoms and coordinates don't match")
	}
	return &Model{receptor: receptor, recCoords: coords}
}

//AddLigand appends a ligand to the model. The bond indexes are local
//to the ligand (0 is the ligand's first atom); they are re-based onto
//the movable sequence internally. Returns an error if a bond index is
//out of the ligand's range.
func (M *Model) AddLigand(atoms []Atom, coords *v3.Matrix, bonds []Bond) error {
	if len(atoms) == 0 || coords == nil || coords.NVecs() != len(atoms) {
		panic("godock: AddLigand: ligand atoms and coordinates don't match")
	}
	offset := len(M.movable)
	for _, b := range bonds {
		if b.A < 0 || b.A >= len(atoms) || b.B < 0 || b.B >= len(atoms) {
			return CError{fmt.Sprintf("godock: AddLigand: bond %d-%d outside the ligand (%d atoms)", b.A, b.B, len(atoms)), []string{"AddLigand"}}
		}
	}
	M.movable = append(M.movable, atoms...)
	if M.coords == nil {
		M.coords = v3.Zeros(len(atoms))
		M.coords.Copy(coords)
	} else {
		old := M.coords
		M.coords = v3.Zeros(offset + len(atoms))
		M.coords.SetMatrix(0, 0, old)
		M.coords.SetMatrix(offset, 0, coords)
	}
	for _, b := range bonds {
		M.bonds = append(M.bonds, Bond{b.A + offset, b.B + offset, b.Rotatable})
	}
	M.ligands = append(M.ligands, Ligand{offset, offset + len(atoms)})
	M.rebuildAdjacency()
	return nil
}

func (M *Model) rebuildAdjacency() {
	M.adjacency = make([][]Bond, len(M.movable))
	for _, b := range M.bonds {
		M.adjacency[b.A] = append(M.adjacency[b.A], b)
		M.adjacency[b.B] = append(M.adjacency[b.B], b)
	}
}

//SetCoords replaces the movable-atom coordinates with c, which must
//have one vector per movable atom. The matrix is copied, so the caller
//can keep mutating c.
func (M *Model) SetCoords(c *v3.Matrix) {
	if c == nil || c.NVecs() != len(M.movable) {
		panic("godock: SetCoords: wrong number of coordinate vectors")
	}
	M.coords.Copy(c)
}

//NumLigands returns the number of ligands added to the model.
func (M *Model) NumLigands() int { return len(M.ligands) }

//NumMovableAtoms returns the number of movable atoms (all ligands).
func (M *Model) NumMovableAtoms() int { return len(M.movable) }

//NumReceptorAtoms returns the number of rigid receptor atoms.
func (M *Model) NumReceptorAtoms() int { return len(M.receptor) }

//Ligand returns the i-th ligand's range over the movable sequence.
func (M *Model) Ligand(i int) Ligand { return M.ligands[i] }

//Atom returns the atom at index i. Panics if i is out of range, as
//that is a programming error.
func (M *Model) Atom(i AtomIndex) Atom {
	if i.Receptor {
		return M.receptor[i.N]
	}
	return M.movable[i.N]
}

//BondsOf returns the bonds touching movable atom i. The returned slice
//is owned by the model; callers must not modify it.
func (M *Model) BondsOf(i int) []Bond {
	return M.adjacency[i]
}

//Distance returns the euclidean distance, in A, between atoms i and j
//at the current coordinates.
func (M *Model) Distance(i, j AtomIndex) float64 {
	ci := M.coordsFor(i)
	cj := M.coordsFor(j)
	dx := ci.At(i.N, 0) - cj.At(j.N, 0)
	dy := ci.At(i.N, 1) - cj.At(j.N, 1)
	dz := ci.At(i.N, 2) - cj.At(j.N, 2)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (M *Model) coordsFor(i AtomIndex) *v3.Matrix {
	if i.Receptor {
		return M.recCoords
	}
	return M.coords
}

//NumTors returns the number of rotatable bonds within ligand lig, i.e.
//its torsional degrees of freedom.
func (M *Model) NumTors(lig int) int {
	l := M.ligands[lig]
	n := 0
	for _, b := range M.bonds {
		if b.Rotatable && b.A >= l.Begin && b.A < l.End && b.B >= l.Begin && b.B < l.End {
			n++
		}
	}
	return n
}

//LigandLength returns the length of ligand lig: the greatest distance
//between any two of its atoms at the current coordinates.
func (M *Model) LigandLength(lig int) float64 {
	l := M.ligands[lig]
	max := 0.0
	for i := l.Begin; i < l.End; i++ {
		for j := i + 1; j < l.End; j++ {
			d := atomDistance(M.coords, i, j)
			if d > max {
				max = d
			}
		}
	}
	return max
}

/*
 * inputs.go, part of godock.
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

package score

import (
	dock "github.com/rmera/godock"
)

//ConfIndependentInputs are the features conformation-independent terms
//evaluate from. They depend on the composition and topology of the
//ligands, not on the pose, so they are derived once per model and
//reused for every candidate conformation. All counts are stored as
//float64 since the terms combine them with real-valued parameters.
type ConfIndependentInputs struct {
	NumTors             float64 //rotatable bonds, summed over ligands
	NumRotors           float64 //rotatable bonds to non-terminal heavy atoms
	NumHeavyAtoms       float64
	NumHydrophobicAtoms float64
	LigandMaxNumHBonds  float64 //hydrogen-bond capable heavy atoms
	NumLigands          float64
	LigandLengthsSum    float64
}

//NewConfIndependentInputs derives the feature vector from m. Only
//movable (ligand) atoms are counted; the receptor contributes nothing.
func NewConfIndependentInputs(m *dock.Model) *ConfIndependentInputs {
	in := new(ConfIndependentInputs)
	in.NumLigands = float64(m.NumLigands())
	for l := 0; l < m.NumLigands(); l++ {
		lig := m.Ligand(l)
		in.NumTors += float64(m.NumTors(l))
		for i := lig.Begin; i < lig.End; i++ {
			t := m.Atom(dock.AtomIndex{N: i}).Type
			if !t.IsHeavy() {
				continue
			}
			in.NumHeavyAtoms++
			//each rotor joins two heavy atoms, so it is seen twice
			in.NumRotors += 0.5 * float64(atomRotors(m, i))
			if t.IsHydrophobic() {
				in.NumHydrophobicAtoms++
			}
			if t.IsDonor() || t.IsAcceptor() {
				in.LigandMaxNumHBonds++
			}
		}
		in.LigandLengthsSum += m.LigandLength(l)
	}
	return in
}

//numBondedHeavyAtoms counts the heavy atoms bonded to movable atom i.
func numBondedHeavyAtoms(m *dock.Model, i int) int {
	n := 0
	for _, b := range m.BondsOf(i) {
		j := b.A
		if j == i {
			j = b.B
		}
		if m.Atom(dock.AtomIndex{N: j}).Type.IsHeavy() {
			n++
		}
	}
	return n
}

//atomRotors counts the rotatable bonds from movable atom i to heavy
//atoms that are not terminal (twisting a bond to a terminal atom
//changes nothing).
func atomRotors(m *dock.Model, i int) int {
	n := 0
	for _, b := range m.BondsOf(i) {
		if !b.Rotatable {
			continue
		}
		j := b.A
		if j == i {
			j = b.B
		}
		if m.Atom(dock.AtomIndex{N: j}).Type.IsHeavy() && numBondedHeavyAtoms(m, j) > 1 {
			n++
		}
	}
	return n
}

//Flat returns the features as a flat sequence, in the fixed order
//NumTors, NumRotors, NumHeavyAtoms, NumHydrophobicAtoms,
//LigandMaxNumHBonds, NumLigands, LigandLengthsSum. External snapshots
//of the vector rely on this order.
func (in *ConfIndependentInputs) Flat() []float64 {
	return []float64{in.NumTors, in.NumRotors, in.NumHeavyAtoms,
		in.NumHydrophobicAtoms, in.LigandMaxNumHBonds, in.NumLigands,
		in.LigandLengthsSum}
}

//Names returns the feature names, matching Flat's order.
func (in *ConfIndependentInputs) Names() []string {
	return []string{"num_tors", "num_rotors", "num_heavy_atoms",
		"num_hydrophobic_atoms", "ligand_max_num_h_bonds", "num_ligands",
		"ligand_lengths_sum"}
}

/*
 * scoring.go, part of godock.
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
	"fmt"
	"io"

	dock "github.com/rmera/godock"
)

//Terms is a scoring function under assembly: one term set per
//evaluation capability, each term independently weighted and
//independently enabled. The zero value is ready to use. Populate it
//with Add before evaluating; the aggregate does no locking, so
//population must finish before evaluation starts, after which
//concurrent read-only evaluation is safe.
//
//Wherever term values are reported as a flat sequence, the order is
//fixed: distance-additive terms first, then usable, additive and
//intermolecular terms, each in registration order.
//Conformation-independent terms are kept apart, as their count maps to
//free parameters rather than to scoring components.
type Terms struct {
	distanceAdditive TermSet[DistanceAdditive]
	usable           TermSet[Usable]
	additive         TermSet[Additive]
	intermolecular   TermSet[Intermolecular]
	confIndependent  TermSet[ConfIndependent]
}

//Add registers t with the given weight, routing it to the set matching
//its evaluation capability. ChargeDependent terms are
//distance-additive terms, so they land in that set. Panics if t
//implements none of the capabilities, which means the term type is
//wrong by construction.
func (T *Terms) Add(weight float64, t Term) {
	switch v := t.(type) {
	case Usable:
		T.usable.Add(weight, v)
	case DistanceAdditive:
		T.distanceAdditive.Add(weight, v)
	case Additive:
		T.additive.Add(weight, v)
	case Intermolecular:
		T.intermolecular.Add(weight, v)
	case ConfIndependent:
		T.confIndependent.Add(weight, v)
	default:
		panic(fmt.Sprintf("godock: term %q implements no evaluation capability", t.Name()))
	}
}

//Names returns the names of the pairwise and intermolecular terms in
//the fixed reporting order, skipping disabled terms if enabledOnly is
//given. Conformation-independent names are excluded; see
//ConfIndependentNames.
func (T *Terms) Names(enabledOnly bool) []string {
	out := make([]string, 0, T.Size())
	out = T.distanceAdditive.Names(enabledOnly, out)
	out = T.usable.Names(enabledOnly, out)
	out = T.additive.Names(enabledOnly, out)
	out = T.intermolecular.Names(enabledOnly, out)
	return out
}

//ConfIndependentNames returns the names of the
//conformation-independent terms, in registration order.
func (T *Terms) ConfIndependentNames(enabledOnly bool) []string {
	return T.confIndependent.Names(enabledOnly, make([]string, 0, T.confIndependent.Len()))
}

//SizeInternal returns the number of terms eligible for intramolecular
//evaluation: the distance-additive, usable and additive terms.
func (T *Terms) SizeInternal() int {
	return T.distanceAdditive.Len() + T.usable.Len() + T.additive.Len()
}

//Size returns the total number of scoring components: the internal
//ones plus the intermolecular terms.
func (T *Terms) Size() int {
	return T.SizeInternal() + T.intermolecular.Len()
}

//SizeConfIndependent returns how many free parameters the
//conformation-independent terms consume in total. It is a parameter
//count, not a term count: one term may take several parameters.
func (T *Terms) SizeConfIndependent(enabledOnly bool) int {
	n := 0
	for i := 0; i < T.confIndependent.Len(); i++ {
		if !enabledOnly || T.confIndependent.Enabled(i) {
			n += T.confIndependent.Term(i).NumParams()
		}
	}
	return n
}

//MaxRCutoff returns the largest cutoff among the distance-based
//pairwise terms. This is the interaction radius a spatial search must
//respect for the scoring function to see every nonzero contribution.
func (T *Terms) MaxRCutoff() float64 {
	da := T.distanceAdditive.MaxCutoff()
	if u := T.usable.MaxCutoff(); u > da {
		return u
	}
	return da
}

//EvalRobust evaluates every enabled pairwise and intermolecular term
//over all movable-vs-receptor atom pairs of m, with no assumption that
//the pairs were pre-filtered by distance: out-of-cutoff pairs just
//contribute zero. It returns one value per registered component, in
//the fixed reporting order, with disabled components left at zero.
//This is the slow, dependable path used when fitting weights or
//checking a faster evaluator.
func (T *Terms) EvalRobust(m *dock.Model) []float64 {
	out := make([]float64, T.Size())
	maxR := T.MaxRCutoff()
	nmov := m.NumMovableAtoms()
	nrec := m.NumReceptorAtoms()
	for i := 0; i < nmov; i++ {
		ii := dock.AtomIndex{N: i}
		a := m.Atom(ii).Base()
		for j := 0; j < nrec; j++ {
			jj := dock.AtomIndex{N: j, Receptor: true}
			r := m.Distance(ii, jj)
			if r >= maxR {
				T.evalAdditiveAux(m, ii, jj, r, out)
				continue
			}
			b := m.Atom(jj).Base()
			for k := 0; k < T.distanceAdditive.Len(); k++ {
				t := T.distanceAdditive.Term(k)
				if T.distanceAdditive.Enabled(k) && r < t.Cutoff() {
					out[k] += t.Eval(a, b, r)
				}
			}
			off := T.distanceAdditive.Len()
			for k := 0; k < T.usable.Len(); k++ {
				t := T.usable.Term(k)
				if T.usable.Enabled(k) && r < t.Cutoff() {
					out[off+k] += t.EvalType(a.Type, b.Type, r)
				}
			}
			T.evalAdditiveAux(m, ii, jj, r, out)
		}
	}
	off := T.SizeInternal()
	for k := 0; k < T.intermolecular.Len(); k++ {
		if T.intermolecular.Enabled(k) {
			out[off+k] += T.intermolecular.Term(k).Eval(m)
		}
	}
	return out
}

//evalAdditiveAux accumulates every enabled additive term's value for
//the atom pair (i,j) at distance r into the additive slots of out,
//which must already be sized to Size(). Existing values are added to,
//never overwritten; the same out can accumulate over many pairs.
func (T *Terms) evalAdditiveAux(m *dock.Model, i, j dock.AtomIndex, r float64, out []float64) {
	off := T.distanceAdditive.Len() + T.usable.Len()
	for k := 0; k < T.additive.Len(); k++ {
		t := T.additive.Term(k)
		if T.additive.Enabled(k) && r < t.Cutoff() {
			out[off+k] += t.Eval(m, i, j)
		}
	}
}

//EvalConfIndependent folds every enabled conformation-independent
//term's adjustment into the running score x, consuming each term's
//declared number of parameters from the front of params. It returns
//the adjusted score and the unconsumed tail of params. Panics if
//params holds fewer values than the enabled terms consume.
func (T *Terms) EvalConfIndependent(in *ConfIndependentInputs, x float64, params []float64) (float64, []float64) {
	if need := T.SizeConfIndependent(true); len(params) < need {
		panic(fmt.Sprintf("godock: conf-independent terms need %d parameters, %d given", need, len(params)))
	}
	for k := 0; k < T.confIndependent.Len(); k++ {
		if !T.confIndependent.Enabled(k) {
			continue
		}
		t := T.confIndependent.Term(k)
		n := t.NumParams()
		x = t.Eval(in, x, params[:n])
		params = params[n:]
	}
	return x, params
}

//FilterExternal reduces v, holding one value per registered component
//(length Size(), reporting order), to the values of the enabled
//components only. Panics on a length mismatch.
func (T *Terms) FilterExternal(v []float64) []float64 {
	if len(v) != T.Size() {
		panic(fmt.Sprintf("godock: FilterExternal: %d values for %d components", len(v), T.Size()))
	}
	out := make([]float64, 0, len(v))
	v, out = T.distanceAdditive.Filter(v, out)
	v, out = T.usable.Filter(v, out)
	v, out = T.additive.Filter(v, out)
	_, out = T.intermolecular.Filter(v, out)
	return out
}

//FilterInternal is FilterExternal over the intramolecular-eligible
//components only: v holds one value per internal component (length
//SizeInternal()).
func (T *Terms) FilterInternal(v []float64) []float64 {
	if len(v) != T.SizeInternal() {
		panic(fmt.Sprintf("godock: FilterInternal: %d values for %d components", len(v), T.SizeInternal()))
	}
	out := make([]float64, 0, len(v))
	v, out = T.distanceAdditive.Filter(v, out)
	v, out = T.usable.Filter(v, out)
	_, out = T.additive.Filter(v, out)
	return out
}

//Filter reduces both groups of f to the currently-enabled components.
//Use it to prune previously computed per-term values after weights
//were reconfigured.
func (T *Terms) Filter(f Factors) Factors {
	return Factors{E: T.FilterExternal(f.E), I: T.FilterInternal(f.I)}
}

//Info writes a human-readable summary of the scoring function to w:
//every term by kind with its enable state, and the
//conformation-independent parameter counts.
func (T *Terms) Info(w io.Writer) {
	kind := func(name string, names []string, enabled []string) {
		fmt.Fprintf(w, "%s terms: %d (%d enabled)\n", name, len(names), len(enabled))
		for _, n := range names {
			fmt.Fprintf(w, "  %s\n", n)
		}
	}
	kind("distance-additive", T.distanceAdditive.Names(false, nil), T.distanceAdditive.Names(true, nil))
	kind("usable", T.usable.Names(false, nil), T.usable.Names(true, nil))
	kind("additive", T.additive.Names(false, nil), T.additive.Names(true, nil))
	kind("intermolecular", T.intermolecular.Names(false, nil), T.intermolecular.Names(true, nil))
	kind("conf-independent", T.confIndependent.Names(false, nil), T.confIndependent.Names(true, nil))
	fmt.Fprintf(w, "conf-independent parameters: %d (%d enabled)\n",
		T.SizeConfIndependent(false), T.SizeConfIndependent(true))
}

/*
 * terms.go, part of godock.
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
	"math"

	dock "github.com/rmera/godock"
)

//Unbounded is the cutoff of terms whose contribution is not limited to
//any interaction distance.
const Unbounded = math.MaxFloat64

//Term is the contract every scoring term satisfies: it has a display
//name, used in reports and when matching weights to terms. Terms must
//be immutable once registered; none of the evaluation interfaces below
//includes mutation.
type Term interface {
	Name() string
}

//DistanceAdditive is a pairwise term evaluated from the types and
//charges of two atoms and their separation r, in A. Its contribution
//is zero for r beyond Cutoff.
type DistanceAdditive interface {
	Term
	Cutoff() float64
	Eval(a, b dock.AtomBase, r float64) float64
}

//Components are the four coefficients a charge-dependent term is
//decomposed into. They depend only on the docking types of the two
//atoms and the distance, never on the actual charges, which is what
//lets callers cache them per type pair. The value for a concrete atom
//pair is recovered with Eval.
type Components struct {
	TypeOnly float64 //used as-is
	ACharge  float64 //scaled by the first atom's charge
	BCharge  float64 //scaled by the second atom's charge
	ABCharge float64 //scaled by the product of both charges
}

//Eval recovers the scalar contribution for a pair of atoms with
//charges qa and qb. This formula is the fixed contract between
//charge-dependent terms and whatever caches their components: cached
//coefficients are only valid relative to this exact split.
func (c Components) Eval(qa, qb float64) float64 {
	return c.TypeOnly + qa*c.ACharge + qb*c.BCharge + qa*qb*c.ABCharge
}

//Add accumulates rhs into c, elementwise. Accumulation commutes, so
//sub-term contributions can be summed in any order before the charge
//multiplication.
func (c *Components) Add(rhs Components) {
	c.TypeOnly += rhs.TypeOnly
	c.ACharge += rhs.ACharge
	c.BCharge += rhs.BCharge
	c.ABCharge += rhs.ABCharge
}

//AddScalar accumulates a charge-independent contribution into c.
func (c *Components) AddScalar(v float64) {
	c.TypeOnly += v
}

//ChargeDependent is a distance-additive term that can be decomposed
//into Components keyed only on the two docking types and the distance.
//Implementations satisfy the DistanceAdditive Eval by combining their
//components with the atoms' charges; EvalChargeDependent does exactly
//that, so a term can use it as its Eval body.
type ChargeDependent interface {
	DistanceAdditive
	EvalComponents(t1, t2 dock.Type, r float64) Components
}

//EvalChargeDependent evaluates a charge-dependent term for a concrete
//atom pair, deferring to the term's components.
func EvalChargeDependent(t ChargeDependent, a, b dock.AtomBase, r float64) float64 {
	return t.EvalComponents(a.Type, b.Type, r).Eval(a.Charge, b.Charge)
}

//Usable is a pairwise term that depends only on the two docking types
//and the distance, with no charge dependence at all, so its values can
//be fully precomputed per type pair. A term is Usable only by
//implementing EvalType explicitly; there is no fallback.
type Usable interface {
	Term
	Cutoff() float64
	EvalType(t1, t2 dock.Type, r float64) float64
}

//Additive is a pairwise term that needs model-wide context (say, the
//bond structure) besides the two atoms, identified by their indexes.
//Terms for which no distance bound applies report Unbounded as their
//Cutoff.
type Additive interface {
	Term
	Cutoff() float64
	Eval(m *dock.Model, i, j dock.AtomIndex) float64
}

//Intermolecular is a whole-complex term: it evaluates to a single
//scalar from the model, with no pairwise decomposition.
type Intermolecular interface {
	Term
	Eval(m *dock.Model) float64
}

//ConfIndependent is a term that does not depend on the conformation at
//all: it evaluates from the fixed per-model feature vector, folding its
//adjustment into the running score x. NumParams declares how many free
//parameters the term consumes from the flat parameter vector; Eval is
//always called with exactly that many. Implementations must be
//order-independent (a pure adjustment of x) unless their documentation
//says otherwise.
type ConfIndependent interface {
	Term
	NumParams() int
	Eval(in *ConfIndependentInputs, x float64, params []float64) float64
}

/*
 * factors.go, part of godock.
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

	"gonum.org/v1/gonum/floats"
)

//Factors holds per-term contributions, split into the external
//(intermolecular) group E and the internal (intramolecular) group I.
//The two groups share one weight vector positionally: weight k scales
//both E[k] and I[k]. When serialized, E goes before I.
type Factors struct {
	E []float64
	I []float64
}

//Size returns the total number of stored contributions.
func (f *Factors) Size() int { return len(f.E) + len(f.I) }

//NumWeights returns the number of weights a reduction needs: the
//length of the longer group.
func (f *Factors) NumWeights() int {
	if len(f.E) > len(f.I) {
		return len(f.E)
	}
	return len(f.I)
}

//Eval reduces the contributions against weights: the weighted sum of
//E, plus the weighted sum of I if includeInternal is given. Panics if
//weights has fewer entries than NumWeights().
func (f *Factors) Eval(weights []float64, includeInternal bool) float64 {
	if len(weights) < f.NumWeights() {
		panic(fmt.Sprintf("godock: Factors.Eval: %d weights given, %d needed", len(weights), f.NumWeights()))
	}
	ret := floats.Dot(f.E, weights[:len(f.E)])
	if includeInternal {
		ret += floats.Dot(f.I, weights[:len(f.I)])
	}
	return ret
}

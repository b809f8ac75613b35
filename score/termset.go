/*
 * termset.go, part of godock.
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

//TermSet is an ordered collection of terms of one capability, each
//paired with an enable flag. The set owns its terms: once added, a
//term must not be touched by anything else. Registration order is the
//canonical order for names, evaluation and weight matching.
type TermSet[T Term] struct {
	enabled []bool
	terms   []T
}

//Add appends t to the set. The term is enabled if weight is positive;
//a term registered with weight zero stays in the set (it keeps its
//position in the full weight vector) but contributes nothing.
func (s *TermSet[T]) Add(weight float64, t T) {
	s.enabled = append(s.enabled, weight > 0)
	s.terms = append(s.terms, t)
}

//The two slices can only get out of sync through a bug in this
//package, so this is a panic, not an error.
func (s *TermSet[T]) check() {
	if len(s.enabled) != len(s.terms) {
		panic("godock: term set enable flags out of sync with its terms")
	}
}

//Len returns the number of terms in the set, enabled or not.
func (s *TermSet[T]) Len() int { return len(s.terms) }

//Term returns the term at position i, in registration order.
func (s *TermSet[T]) Term(i int) T { return s.terms[i] }

//Enabled returns whether the term at position i is enabled.
func (s *TermSet[T]) Enabled(i int) bool { return s.enabled[i] }

//NumEnabled returns the number of enabled terms.
func (s *TermSet[T]) NumEnabled() int {
	n := 0
	for _, e := range s.enabled {
		if e {
			n++
		}
	}
	return n
}

//Names appends the terms' names to out, in registration order,
//skipping disabled terms if enabledOnly is given, and returns the
//extended slice. It never clears out: name lists accumulate across
//several sets.
func (s *TermSet[T]) Names(enabledOnly bool, out []string) []string {
	s.check()
	for i, t := range s.terms {
		if !enabledOnly || s.enabled[i] {
			out = append(out, t.Name())
		}
	}
	return out
}

//Filter consumes exactly Len() values from the front of in, one per
//term, appending to out only those that correspond to enabled terms,
//in order. It returns the unconsumed tail of in and the extended out.
//This is how a weight vector covering every registered term is reduced
//to one covering only the enabled ones. Panics if in is too short.
func (s *TermSet[T]) Filter(in, out []float64) ([]float64, []float64) {
	s.check()
	if len(in) < len(s.terms) {
		panic("godock: Filter: input values are fewer than the terms in the set")
	}
	for i := range s.terms {
		if s.enabled[i] {
			out = append(out, in[i])
		}
	}
	return in[len(s.terms):], out
}

//MaxCutoff returns the largest cutoff among all terms in the set,
//enabled or not, or 0 for an empty set. Callers use it to size
//neighbor-search radii. Terms without a cutoff contribute nothing.
func (s *TermSet[T]) MaxCutoff() float64 {
	max := 0.0
	for _, t := range s.terms {
		c, ok := any(t).(interface{ Cutoff() float64 })
		if !ok {
			continue
		}
		if r := c.Cutoff(); r > max {
			max = r
		}
	}
	return max
}

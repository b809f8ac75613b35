/*
 * doc.go, part of godock.
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

/*Package score assembles docking scoring functions from independently
implemented energy terms.

A scoring function is a weighted sum of terms. Each term implements one
of a small set of evaluation capabilities (pairwise over a distance,
pairwise with model context, whole-model, or conformation-independent),
and is registered into a Terms aggregate with a weight; a weight of
zero registers the term disabled. The aggregate evaluates every enabled
term against a dock.Model and reports one value per term, which Factors
then reduces against a weight vector into the final score.

Pairwise terms whose value depends only on the docking types of the two
atoms (Usable terms) can be precomputed per type pair by the caller.
Terms that also depend on the partial charges implement ChargeDependent
instead: they report four Components keyed only on the types, and the
charge multiplication is deferred to evaluation time, so those four
numbers are just as cacheable.

This package is evaluated once per candidate pose during a docking
search, so the per-pair evaluation paths do not allocate: they
accumulate into slices the caller provides and keeps across poses.
*/
package score

/*
 * errors.go, part of godock.
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

/**Note: As in goChem itself, functions in this package panic on
 * conditions that can only arise from a programming error (nil models,
 * out-of-range docking indexes, registries whose internal slices got out
 * of sync). Errors are returned for conditions that can come from the
 * data, such as a topology with an element we can't assign a docking
 * type to.**/

// Error is the interface for errors in godock, following the goChem
// convention. The Decorate method adds information to the error as it is
// passed up the calling stack, without wrapping it in another type.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the concrete type implementing the Error
// interface for this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of the error,
// and returns the resulting slice. If dec is empty, it just returns the
// current decorations.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

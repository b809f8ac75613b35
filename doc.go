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

/*Package dock provides the molecular model used by the godock scoring
machinery: docking atom types, partially-charged atoms, and a docking
model built from a rigid receptor plus one or more movable ligands with
rotatable bonds.

godock is a companion module to goChem. Atoms are typed from goChem
topologies (chem.Atomer) and coordinates are goChem/v3 matrices, so
anything goChem can read (PDB, XYZ, etc.) can be docked against.

The scoring machinery itself lives in the score subpackage; ready-made
energy terms live in the potential subpackage.
*/
package dock

/*Package potential provides ready-made energy terms for the godock
scoring machinery, plus a Default preset resembling the classic
empirical docking functions: steric attraction and repulsion gaussians,
a hydrophobic contact term, a non-directional hydrogen bond, a capped
coulombic term, and torsion-count penalties.

The parameter values used by Default are illustrative, not a fitted
production set; anyone after publication-grade scores should fit their
own weights.
*/
package potential

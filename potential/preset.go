package potential

import (
	"github.com/rmera/godock/score"
)

//Default assembles the classic five-term empirical scoring function:
//two contact gaussians, a steric repulsion, a hydrophobic contact term
//and a non-directional hydrogen bond, moderated by a torsion-count
//divisor. It returns the aggregate and the matching flat weight
//vector: one weight per scoring component in reporting order, followed
//by the conformation-independent parameters.
//
//All terms are registered enabled; disable or re-weight by building
//your own aggregate instead.
func Default() (*score.Terms, []float64) {
	t := new(score.Terms)
	t.Add(1, Gauss{Offset: 0, Width: 0.5, Cut: 8})
	t.Add(1, Gauss{Offset: 3, Width: 2, Cut: 8})
	t.Add(1, Repulsion{Offset: 0, Cut: 8})
	t.Add(1, Hydrophobic{Good: 0.5, Bad: 1.5, Cut: 8})
	t.Add(1, NonDirHBond{Good: -0.7, Bad: 0, Cut: 8})
	t.Add(1, NumTorsDiv{})
	weights := []float64{
		-0.035579, //gauss(o=0,w=0.5)
		-0.005156, //gauss(o=3,w=2)
		0.840245,  //repulsion
		-0.035069, //hydrophobic
		-0.587439, //non_dir_h_bond
		0.05846,   //num_tors_div parameter
	}
	return t, weights
}

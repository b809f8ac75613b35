package potential

import (
	"fmt"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/score"
)

//Restraint is a harmonic restraint between two specific atoms of the
//model: K*(r-R0)^2 when evaluated at its own atom pair, zero for every
//other pair. Use it to bias a docking toward a known contact.
type Restraint struct {
	I, J dock.AtomIndex
	R0   float64 //rest distance, A
	K    float64 //force constant
}

func (rs Restraint) Name() string {
	return fmt.Sprintf("restraint(%v-%v,r0=%g,k=%g)", rs.I, rs.J, rs.R0, rs.K)
}

//A restraint holds at any distance.
func (rs Restraint) Cutoff() float64 { return score.Unbounded }

func (rs Restraint) Eval(m *dock.Model, i, j dock.AtomIndex) float64 {
	if (i != rs.I || j != rs.J) && (i != rs.J || j != rs.I) {
		return 0
	}
	d := m.Distance(i, j) - rs.R0
	return rs.K * d * d
}

//Constant evaluates to 1 for any model, so its weight becomes an
//additive constant of the scoring function.
type Constant struct{}

func (Constant) Name() string { return "constant" }

func (Constant) Eval(m *dock.Model) float64 { return 1 }

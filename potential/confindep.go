package potential

import (
	"math"

	"github.com/rmera/godock/score"
)

//The conformation-independent terms below consume one parameter each
//unless noted. They are pure adjustments of the running score, so the
//order in which the aggregate applies them does not matter.

//NumTorsDiv scales the score down with ligand flexibility:
//x / (1 + w*num_tors/5).
type NumTorsDiv struct{}

func (NumTorsDiv) Name() string   { return "num_tors_div" }
func (NumTorsDiv) NumParams() int { return 1 }

func (NumTorsDiv) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return smoothDiv(x, 1+p[0]*in.NumTors/5)
}

//NumTorsAdd penalizes flexibility linearly: x + w*num_tors.
type NumTorsAdd struct{}

func (NumTorsAdd) Name() string   { return "num_tors_add" }
func (NumTorsAdd) NumParams() int { return 1 }

func (NumTorsAdd) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return x + p[0]*in.NumTors
}

//NumTorsSqr penalizes flexibility quadratically: x + w*num_tors^2/5.
type NumTorsSqr struct{}

func (NumTorsSqr) Name() string   { return "num_tors_sqr" }
func (NumTorsSqr) NumParams() int { return 1 }

func (NumTorsSqr) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return x + p[0]*in.NumTors*in.NumTors/5
}

//NumHeavyAtoms adjusts for ligand size: x + w*num_heavy_atoms.
type NumHeavyAtoms struct{}

func (NumHeavyAtoms) Name() string   { return "num_heavy_atoms" }
func (NumHeavyAtoms) NumParams() int { return 1 }

func (NumHeavyAtoms) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return x + p[0]*in.NumHeavyAtoms
}

//LigandLengths adjusts for ligand extent: x + w*ligand_lengths_sum.
type LigandLengths struct{}

func (LigandLengths) Name() string   { return "ligand_lengths" }
func (LigandLengths) NumParams() int { return 1 }

func (LigandLengths) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return x + p[0]*in.LigandLengthsSum
}

//Linear is a two-parameter affine adjustment of the score by an
//arbitrary feature: x + p0*feature + p1. Label names the term in
//reports; Select picks the feature.
type Linear struct {
	Label  string
	Select func(in *score.ConfIndependentInputs) float64
}

func (l Linear) Name() string   { return l.Label }
func (l Linear) NumParams() int { return 2 }

func (l Linear) Eval(in *score.ConfIndependentInputs, x float64, p []float64) float64 {
	return x + p[0]*l.Select(in) + p[1]
}

//smoothDiv is a division that fails soft near zero denominators
//instead of blowing up the score.
func smoothDiv(x, y float64) float64 {
	const eps = 2.2e-11
	if math.Abs(x) < eps {
		return 0
	}
	if math.Abs(y) < eps {
		if x > 0 {
			return math.MaxFloat64
		}
		return -math.MaxFloat64
	}
	return x / y
}

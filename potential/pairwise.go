package potential

import (
	"fmt"
	"math"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/score"
)

//optimalDistance is the ideal contact distance for a type pair: the
//sum of the optimal-contact radii.
func optimalDistance(t1, t2 dock.Type) float64 {
	return t1.Radius() + t2.Radius()
}

//slopeStep ramps linearly from 0 at bad to 1 at good, clamped outside,
//working in either direction (bad above or below good).
func slopeStep(bad, good, x float64) float64 {
	if bad < good {
		if x <= bad {
			return 0
		}
		if x >= good {
			return 1
		}
	} else {
		if x >= bad {
			return 0
		}
		if x <= good {
			return 1
		}
	}
	return (x - bad) / (good - bad)
}

//Gauss is a gaussian of the deviation from ideal contact, displaced by
//Offset. With a small Width it rewards snug surface contact; with a
//larger Width and Offset it gives a softer, longer-ranged attraction.
type Gauss struct {
	Offset float64
	Width  float64
	Cut    float64
}

func (g Gauss) Name() string {
	return fmt.Sprintf("gauss(o=%g,w=%g,c=%g)", g.Offset, g.Width, g.Cut)
}

func (g Gauss) Cutoff() float64 { return g.Cut }

func (g Gauss) EvalType(t1, t2 dock.Type, r float64) float64 {
	d := (r - (optimalDistance(t1, t2) + g.Offset)) / g.Width
	return math.Exp(-d * d)
}

//Repulsion penalizes, quadratically, pairs closer than their ideal
//contact distance (displaced by Offset), and ignores anything farther.
type Repulsion struct {
	Offset float64
	Cut    float64
}

func (rp Repulsion) Name() string {
	return fmt.Sprintf("repulsion(o=%g,c=%g)", rp.Offset, rp.Cut)
}

func (rp Repulsion) Cutoff() float64 { return rp.Cut }

func (rp Repulsion) EvalType(t1, t2 dock.Type, r float64) float64 {
	d := r - (optimalDistance(t1, t2) + rp.Offset)
	if d > 0 {
		return 0
	}
	return d * d
}

//Hydrophobic rewards contact between two hydrophobic atoms: 1 when the
//deviation from ideal contact is at most Good, fading to 0 at Bad.
type Hydrophobic struct {
	Good float64
	Bad  float64
	Cut  float64
}

func (h Hydrophobic) Name() string {
	return fmt.Sprintf("hydrophobic(g=%g,b=%g,c=%g)", h.Good, h.Bad, h.Cut)
}

func (h Hydrophobic) Cutoff() float64 { return h.Cut }

func (h Hydrophobic) EvalType(t1, t2 dock.Type, r float64) float64 {
	if !t1.IsHydrophobic() || !t2.IsHydrophobic() {
		return 0
	}
	return slopeStep(h.Bad, h.Good, r-optimalDistance(t1, t2))
}

//NonDirHBond rewards a donor/acceptor pair at hydrogen-bonding
//distance, with no directionality: 1 when the deviation from ideal
//contact is at most Good (typically negative), fading to 0 at Bad.
type NonDirHBond struct {
	Good float64
	Bad  float64
	Cut  float64
}

func (h NonDirHBond) Name() string {
	return fmt.Sprintf("non_dir_h_bond(g=%g,b=%g,c=%g)", h.Good, h.Bad, h.Cut)
}

func (h NonDirHBond) Cutoff() float64 { return h.Cut }

func (h NonDirHBond) EvalType(t1, t2 dock.Type, r float64) float64 {
	if !dock.HBondPossible(t1, t2) {
		return 0
	}
	return slopeStep(h.Bad, h.Good, r-optimalDistance(t1, t2))
}

//Electrostatic is a capped coulombic-like term: charge product over
//r^Power, capped at Cap for vanishing distances. The whole value rides
//on the charge product, so the components carry only the ABCharge
//coefficient and the term is fully cacheable per type pair.
type Electrostatic struct {
	Power int //r exponent; 1 for plain coulombic, 2 for a distance-dependent dielectric
	Cap   float64
	Cut   float64
}

func (e Electrostatic) Name() string {
	return fmt.Sprintf("electrostatic(i=%d,c=%g)", e.Power, e.Cut)
}

func (e Electrostatic) Cutoff() float64 { return e.Cut }

func (e Electrostatic) EvalComponents(t1, t2 dock.Type, r float64) score.Components {
	rp := math.Pow(r, float64(e.Power))
	b := e.Cap
	if rp > 1e-10 && 1/rp < e.Cap {
		b = 1 / rp
	}
	return score.Components{ABCharge: b}
}

func (e Electrostatic) Eval(a, b dock.AtomBase, r float64) float64 {
	return score.EvalChargeDependent(e, a, b, r)
}

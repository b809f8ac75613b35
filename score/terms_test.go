package score

import (
	"math"
	"testing"

	dock "github.com/rmera/godock"
)

func TestComponentsEval(Te *testing.T) {
	c := Components{TypeOnly: 1.0, ACharge: 2.0, BCharge: 3.0, ABCharge: 4.0}
	//1 + 0.5*2 + (-1)*3 + 0.5*(-1)*4 = -3
	if v := c.Eval(0.5, -1.0); math.Abs(v-(-3.0)) > 1e-12 {
		Te.Errorf("components eval %v, wanted -3", v)
	}
	//no charges, only the type-only part survives
	if v := c.Eval(0, 0); v != 1.0 {
		Te.Errorf("chargeless eval %v, wanted 1", v)
	}
}

func TestComponentsAdd(Te *testing.T) {
	a := Components{1, 2, 3, 4}
	b := Components{10, 20, 30, 40}
	ab := a
	ab.Add(b)
	ba := b
	ba.Add(a)
	if ab != ba {
		Te.Errorf("accumulation is not commutative: %v vs %v", ab, ba)
	}
	if ab != (Components{11, 22, 33, 44}) {
		Te.Errorf("accumulated components %v", ab)
	}
	ab.AddScalar(0.5)
	if ab != (Components{11.5, 22, 33, 44}) {
		Te.Errorf("scalar accumulation must only touch the type-only slot: %v", ab)
	}
}

func TestEvalChargeDependent(Te *testing.T) {
	t := fakeCharge{name: "fc", cut: 8,
		comp: Components{TypeOnly: 1, ACharge: 2, BCharge: 3, ABCharge: 4}}
	a := dock.AtomBase{Type: dock.OxygenA, Charge: 0.5}
	b := dock.AtomBase{Type: dock.NitrogenD, Charge: -1.0}
	if v := t.Eval(a, b, 2.0); math.Abs(v-(-3.0)) > 1e-12 {
		Te.Errorf("charge-dependent eval %v, wanted -3", v)
	}
	//the decomposition must not depend on the charges themselves
	c1 := t.EvalComponents(a.Type, b.Type, 2.0)
	c2 := t.EvalComponents(a.Type, b.Type, 2.0)
	if c1 != c2 {
		Te.Error("components are not reproducible for the same types and distance")
	}
}

package score

import (
	"math"
	"testing"

	dock "github.com/rmera/godock"
)

//Fake terms used across the tests of this package.

type fakeUsable struct {
	name string
	cut  float64
	val  float64
}

func (f fakeUsable) Name() string    { return f.name }
func (f fakeUsable) Cutoff() float64 { return f.cut }
func (f fakeUsable) EvalType(t1, t2 dock.Type, r float64) float64 {
	return f.val
}

type fakeDA struct {
	name string
	cut  float64
	val  float64
}

func (f fakeDA) Name() string    { return f.name }
func (f fakeDA) Cutoff() float64 { return f.cut }
func (f fakeDA) Eval(a, b dock.AtomBase, r float64) float64 {
	return f.val
}

type fakeCharge struct {
	name string
	cut  float64
	comp Components
}

func (f fakeCharge) Name() string    { return f.name }
func (f fakeCharge) Cutoff() float64 { return f.cut }
func (f fakeCharge) EvalComponents(t1, t2 dock.Type, r float64) Components {
	return f.comp
}
func (f fakeCharge) Eval(a, b dock.AtomBase, r float64) float64 {
	return EvalChargeDependent(f, a, b, r)
}

type fakeAdditive struct {
	name string
	val  float64
}

func (f fakeAdditive) Name() string    { return f.name }
func (f fakeAdditive) Cutoff() float64 { return Unbounded }
func (f fakeAdditive) Eval(m *dock.Model, i, j dock.AtomIndex) float64 {
	return f.val
}

type fakeInter struct {
	name string
	val  float64
}

func (f fakeInter) Name() string { return f.name }
func (f fakeInter) Eval(m *dock.Model) float64 {
	return f.val
}

//adds the sum of its parameters to x
type fakeConf struct {
	name string
	n    int
}

func (f fakeConf) Name() string   { return f.name }
func (f fakeConf) NumParams() int { return f.n }
func (f fakeConf) Eval(in *ConfIndependentInputs, x float64, p []float64) float64 {
	for _, v := range p {
		x += v
	}
	return x
}

func TestTermSetAdd(Te *testing.T) {
	var s TermSet[Usable]
	weights := []float64{1, 0, 0.3, -2}
	for k, w := range weights {
		s.Add(w, fakeUsable{name: "t", cut: 1})
		if s.Len() != k+1 {
			Te.Fatalf("after %d adds the set has %d terms", k+1, s.Len())
		}
		if s.Enabled(k) != (w > 0) {
			Te.Errorf("term added with weight %v: enabled=%v", w, s.Enabled(k))
		}
	}
	if s.NumEnabled() != 2 {
		Te.Errorf("got %d enabled terms, wanted 2", s.NumEnabled())
	}
}

func TestTermSetNames(Te *testing.T) {
	var s TermSet[Usable]
	s.Add(1, fakeUsable{name: "a"})
	s.Add(0, fakeUsable{name: "b"})
	s.Add(2, fakeUsable{name: "c"})
	all := s.Names(false, nil)
	if len(all) != 3 || all[0] != "a" || all[1] != "b" || all[2] != "c" {
		Te.Errorf("all names: %v", all)
	}
	enabled := s.Names(true, nil)
	if len(enabled) != 2 || enabled[0] != "a" || enabled[1] != "c" {
		Te.Errorf("enabled names: %v", enabled)
	}
	//Names must append, not clear
	both := s.Names(true, []string{"x"})
	if len(both) != 3 || both[0] != "x" {
		Te.Errorf("appended names: %v", both)
	}
}

func TestTermSetFilter(Te *testing.T) {
	var s TermSet[Usable]
	s.Add(1, fakeUsable{name: "a"})
	s.Add(0, fakeUsable{name: "b"})
	s.Add(2, fakeUsable{name: "c"})
	in := []float64{10, 20, 30, 40}
	tail, out := s.Filter(in, nil)
	if len(out) != s.NumEnabled() {
		Te.Fatalf("filtered %d values, wanted %d", len(out), s.NumEnabled())
	}
	if out[0] != 10 || out[1] != 30 {
		Te.Errorf("filtered values %v, wanted [10 30]", out)
	}
	//disabled values are consumed even though they are dropped
	if len(tail) != 1 || tail[0] != 40 {
		Te.Errorf("unconsumed tail %v, wanted [40]", tail)
	}
}

func TestTermSetFilterShortInput(Te *testing.T) {
	var s TermSet[Usable]
	s.Add(1, fakeUsable{name: "a"})
	s.Add(1, fakeUsable{name: "b"})
	defer func() {
		if recover() == nil {
			Te.Error("Filter with too few inputs should panic")
		}
	}()
	s.Filter([]float64{1}, nil)
}

func TestMaxCutoff(Te *testing.T) {
	var s TermSet[Usable]
	if s.MaxCutoff() != 0 {
		Te.Errorf("empty set max cutoff %v, wanted 0", s.MaxCutoff())
	}
	s.Add(1, fakeUsable{name: "a", cut: 2.0})
	s.Add(0, fakeUsable{name: "b", cut: 4.5}) //disabled terms count too
	s.Add(1, fakeUsable{name: "c", cut: 3.1})
	if c := s.MaxCutoff(); math.Abs(c-4.5) > 1e-12 {
		Te.Errorf("max cutoff %v, wanted 4.5", c)
	}
}

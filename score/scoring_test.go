package score

import (
	"bytes"
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/gochem/v3"
	dock "github.com/rmera/godock"
)

func mustMatrix(data []float64) *v3.Matrix {
	m, err := v3.NewMatrix(data)
	if err != nil {
		panic(err.Error())
	}
	return m
}

//one movable atom at the origin, receptor atoms at 1 and 10 A
func pairModel() *dock.Model {
	receptor := []dock.Atom{
		{AtomBase: dock.AtomBase{Type: dock.OxygenA, Charge: -1.0}},
		{AtomBase: dock.AtomBase{Type: dock.CarbonH, Charge: 0}},
	}
	m := dock.NewModel(receptor, mustMatrix([]float64{
		1, 0, 0,
		10, 0, 0,
	}))
	lig := []dock.Atom{{AtomBase: dock.AtomBase{Type: dock.NitrogenD, Charge: 0.5}}}
	if err := m.AddLigand(lig, mustMatrix([]float64{0, 0, 0}), nil); err != nil {
		panic(err.Error())
	}
	return m
}

func sevenTermAggregate() *Terms {
	t := new(Terms)
	t.Add(1, fakeDA{name: "da1", cut: 8, val: 1})
	t.Add(0, fakeDA{name: "da2", cut: 8, val: 1})
	t.Add(1, fakeDA{name: "da3", cut: 8, val: 1})
	t.Add(1, fakeUsable{name: "u1", cut: 8, val: 1})
	t.Add(0, fakeUsable{name: "u2", cut: 8, val: 1})
	t.Add(1, fakeAdditive{name: "ad1", val: 1})
	t.Add(1, fakeInter{name: "in1", val: 1})
	return t
}

func TestAggregateSizes(Te *testing.T) {
	t := sevenTermAggregate()
	if t.Size() != 7 {
		Te.Errorf("size %d, wanted 7", t.Size())
	}
	if t.SizeInternal() != 6 {
		Te.Errorf("internal size %d, wanted 6", t.SizeInternal())
	}
}

func TestAggregateNames(Te *testing.T) {
	t := sevenTermAggregate()
	all := t.Names(false)
	wanted := []string{"da1", "da2", "da3", "u1", "u2", "ad1", "in1"}
	if len(all) != len(wanted) {
		Te.Fatalf("got %d names: %v", len(all), all)
	}
	for i := range wanted {
		if all[i] != wanted[i] {
			Te.Errorf("name %d is %q, wanted %q", i, all[i], wanted[i])
		}
	}
	enabled := t.Names(true)
	wantedEnabled := []string{"da1", "da3", "u1", "ad1", "in1"}
	if len(enabled) != len(wantedEnabled) {
		Te.Fatalf("got %d enabled names: %v", len(enabled), enabled)
	}
	for i := range wantedEnabled {
		if enabled[i] != wantedEnabled[i] {
			Te.Errorf("enabled name %d is %q, wanted %q", i, enabled[i], wantedEnabled[i])
		}
	}
}

func TestAddRouting(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeCharge{name: "cd", cut: 8}) //charge-dependent terms are distance-additive
	t.Add(1, fakeUsable{name: "u", cut: 8})
	t.Add(1, fakeConf{name: "ci", n: 1})
	if t.Size() != 2 || t.SizeInternal() != 2 {
		Te.Errorf("size %d internal %d, wanted 2 and 2", t.Size(), t.SizeInternal())
	}
	if t.SizeConfIndependent(false) != 1 {
		Te.Errorf("conf-independent size %d, wanted 1", t.SizeConfIndependent(false))
	}
	names := t.Names(false)
	if len(names) != 2 || names[0] != "cd" || names[1] != "u" {
		Te.Errorf("names %v", names)
	}
	ciNames := t.ConfIndependentNames(false)
	if len(ciNames) != 1 || ciNames[0] != "ci" {
		Te.Errorf("conf-independent names %v", ciNames)
	}
}

type nameOnlyTerm struct{}

func (nameOnlyTerm) Name() string { return "nothing" }

func TestAddUnroutable(Te *testing.T) {
	t := new(Terms)
	defer func() {
		if recover() == nil {
			Te.Error("adding a term with no evaluation capability should panic")
		}
	}()
	t.Add(1, nameOnlyTerm{})
}

func TestSizeConfIndependent(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeConf{name: "one", n: 1})
	t.Add(0, fakeConf{name: "two", n: 2})
	t.Add(1, fakeConf{name: "three", n: 3})
	//a parameter count, not a term count
	if n := t.SizeConfIndependent(false); n != 6 {
		Te.Errorf("all parameters: %d, wanted 6", n)
	}
	if n := t.SizeConfIndependent(true); n != 4 {
		Te.Errorf("enabled parameters: %d, wanted 4", n)
	}
}

func TestMaxRCutoff(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeDA{name: "da", cut: 4})
	t.Add(1, fakeUsable{name: "u", cut: 6.5})
	t.Add(1, fakeAdditive{name: "ad"}) //unbounded, but not distance-based
	if c := t.MaxRCutoff(); math.Abs(c-6.5) > 1e-12 {
		Te.Errorf("max r cutoff %v, wanted 6.5", c)
	}
}

func TestEvalRobust(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeDA{name: "da", cut: 8, val: 2})
	t.Add(1, fakeCharge{name: "cd", cut: 8,
		comp: Components{TypeOnly: 1, ACharge: 2, BCharge: 3, ABCharge: 4}})
	t.Add(1, fakeUsable{name: "u", cut: 8, val: 3})
	t.Add(1, fakeAdditive{name: "ad", val: 5})
	t.Add(1, fakeInter{name: "in", val: 7})
	m := pairModel()
	out := t.EvalRobust(m)
	if len(out) != t.Size() {
		Te.Fatalf("got %d values for %d components", len(out), t.Size())
	}
	//only the receptor atom at 1 A is within the 8 A cutoff
	if math.Abs(out[0]-2) > 1e-12 {
		Te.Errorf("distance-additive component %v, wanted 2", out[0])
	}
	//qa=0.5 (ligand), qb=-1 (near receptor atom): 1+1-3-2 = -3
	if math.Abs(out[1]-(-3)) > 1e-12 {
		Te.Errorf("charge-dependent component %v, wanted -3", out[1])
	}
	if math.Abs(out[2]-3) > 1e-12 {
		Te.Errorf("usable component %v, wanted 3", out[2])
	}
	//the additive term is unbounded, so both pairs contribute
	if math.Abs(out[3]-10) > 1e-12 {
		Te.Errorf("additive component %v, wanted 10", out[3])
	}
	//intermolecular terms are evaluated once, not per pair
	if math.Abs(out[4]-7) > 1e-12 {
		Te.Errorf("intermolecular component %v, wanted 7", out[4])
	}
}

func TestEvalRobustDisabled(Te *testing.T) {
	t := new(Terms)
	t.Add(0, fakeDA{name: "da", cut: 8, val: 2})
	t.Add(1, fakeUsable{name: "u", cut: 8, val: 3})
	out := t.EvalRobust(pairModel())
	if out[0] != 0 {
		Te.Errorf("disabled component evaluated to %v", out[0])
	}
	if math.Abs(out[1]-3) > 1e-12 {
		Te.Errorf("enabled component %v, wanted 3", out[1])
	}
}

func TestEvalConfIndependent(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeConf{name: "a", n: 1})
	t.Add(0, fakeConf{name: "b", n: 2}) //disabled: consumes nothing
	t.Add(1, fakeConf{name: "c", n: 1})
	in := &ConfIndependentInputs{}
	x, rest := t.EvalConfIndependent(in, 10, []float64{1, 2, 3})
	if math.Abs(x-13) > 1e-12 {
		Te.Errorf("folded score %v, wanted 13", x)
	}
	if len(rest) != 1 || rest[0] != 3 {
		Te.Errorf("unconsumed parameters %v, wanted [3]", rest)
	}
}

func TestEvalConfIndependentShortParams(Te *testing.T) {
	t := new(Terms)
	t.Add(1, fakeConf{name: "a", n: 2})
	defer func() {
		if recover() == nil {
			Te.Error("folding with too few parameters should panic")
		}
	}()
	t.EvalConfIndependent(&ConfIndependentInputs{}, 0, []float64{1})
}

func TestFilters(Te *testing.T) {
	t := sevenTermAggregate()
	ext := t.FilterExternal([]float64{1, 2, 3, 4, 5, 6, 7})
	wantedExt := []float64{1, 3, 4, 6, 7} //da2 and u2 are disabled
	if len(ext) != len(wantedExt) {
		Te.Fatalf("filtered external: %v", ext)
	}
	for i := range wantedExt {
		if ext[i] != wantedExt[i] {
			Te.Errorf("external value %d is %v, wanted %v", i, ext[i], wantedExt[i])
		}
	}
	intern := t.FilterInternal([]float64{1, 2, 3, 4, 5, 6})
	wantedInt := []float64{1, 3, 4, 6}
	if len(intern) != len(wantedInt) {
		Te.Fatalf("filtered internal: %v", intern)
	}
	for i := range wantedInt {
		if intern[i] != wantedInt[i] {
			Te.Errorf("internal value %d is %v, wanted %v", i, intern[i], wantedInt[i])
		}
	}
	f := t.Filter(Factors{E: []float64{1, 2, 3, 4, 5, 6, 7}, I: []float64{1, 2, 3, 4, 5, 6}})
	if len(f.E) != 5 || len(f.I) != 4 {
		Te.Errorf("filtered factors sized %d/%d, wanted 5/4", len(f.E), len(f.I))
	}
}

func TestFilterIdempotent(Te *testing.T) {
	//with every term enabled, filtering changes nothing, so a second
	//pass over the already-filtered factors is a no-op
	t := new(Terms)
	t.Add(1, fakeDA{name: "da", cut: 8})
	t.Add(1, fakeInter{name: "in"})
	f := Factors{E: []float64{1, 2}, I: []float64{3}}
	once := t.Filter(f)
	twice := t.Filter(once)
	if len(once.E) != len(twice.E) || len(once.I) != len(twice.I) {
		Te.Fatal("second filter changed the sizes")
	}
	for i := range once.E {
		if once.E[i] != twice.E[i] {
			Te.Errorf("external value %d changed from %v to %v", i, once.E[i], twice.E[i])
		}
	}
}

func TestFilterExternalWrongSize(Te *testing.T) {
	t := sevenTermAggregate()
	defer func() {
		if recover() == nil {
			Te.Error("filtering a wrongly-sized vector should panic")
		}
	}()
	t.FilterExternal([]float64{1, 2, 3})
}

func TestInfo(Te *testing.T) {
	t := sevenTermAggregate()
	t.Add(1, fakeConf{name: "ci", n: 2})
	var buf bytes.Buffer
	t.Info(&buf)
	s := buf.String()
	for _, frag := range []string{"da1", "u1", "ad1", "in1", "ci", "parameters"} {
		if !strings.Contains(s, frag) {
			Te.Errorf("summary is missing %q:\n%s", frag, s)
		}
	}
}

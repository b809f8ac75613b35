package score

import (
	"math"
	"testing"
)

func TestFactorsEval(Te *testing.T) {
	f := Factors{E: []float64{1, 2}, I: []float64{10, 20}}
	w := []float64{1, 0.5}
	if v := f.Eval(w, false); math.Abs(v-2.0) > 1e-12 {
		Te.Errorf("external-only eval %v, wanted 2", v)
	}
	if v := f.Eval(w, true); math.Abs(v-22.0) > 1e-12 {
		Te.Errorf("full eval %v, wanted 22", v)
	}
}

func TestFactorsSizes(Te *testing.T) {
	f := Factors{E: []float64{1, 2, 3}, I: []float64{10}}
	if f.Size() != 4 {
		Te.Errorf("size %d, wanted 4", f.Size())
	}
	if f.NumWeights() != 3 {
		Te.Errorf("num weights %d, wanted 3", f.NumWeights())
	}
	//the groups share weights positionally, so the longer one rules
	f = Factors{E: []float64{1}, I: []float64{10, 20}}
	if f.NumWeights() != 2 {
		Te.Errorf("num weights %d, wanted 2", f.NumWeights())
	}
}

func TestFactorsEvalShortWeights(Te *testing.T) {
	f := Factors{E: []float64{1, 2}, I: []float64{10, 20, 30}}
	defer func() {
		if recover() == nil {
			Te.Error("Eval with too few weights should panic")
		}
	}()
	f.Eval([]float64{1, 1}, true)
}

//asymmetric groups still work when enough weights are given
func TestFactorsEvalAsymmetric(Te *testing.T) {
	f := Factors{E: []float64{1}, I: []float64{10, 20}}
	w := []float64{2, 3}
	if v := f.Eval(w, false); math.Abs(v-2.0) > 1e-12 {
		Te.Errorf("external-only eval %v, wanted 2", v)
	}
	if v := f.Eval(w, true); math.Abs(v-82.0) > 1e-12 {
		Te.Errorf("full eval %v, wanted 82", v)
	}
}

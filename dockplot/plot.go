package dockplot

import (
	"fmt"
	"sort"

	dock "github.com/rmera/godock"
	"github.com/rmera/godock/score"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Options control the sampling of term profiles.
type Options struct {
	points int
	rmin   float64
	rmax   float64
}

//DefaultOptions returns an Options with the default sampling: 200
//points between 0.1 and 8 A.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.points = 200
	ret.rmin = 0.1
	ret.rmax = 8
	return ret
}

//Points returns the number of samples per profile and sets it, if a
//valid value is given.
func (o *Options) Points(points ...int) int {
	ret := o.points
	if len(points) > 0 && points[0] > 1 {
		o.points = points[0]
	}
	return ret
}

//RMin returns the smallest sampled distance and sets it, if a valid
//value is given.
func (o *Options) RMin(rmin ...float64) float64 {
	ret := o.rmin
	if len(rmin) > 0 && rmin[0] > 0 {
		o.rmin = rmin[0]
	}
	return ret
}

//RMax returns the largest sampled distance and sets it, if a valid
//value is given. Term cutoffs below RMax still bound their profiles.
func (o *Options) RMax(rmax ...float64) float64 {
	ret := o.rmax
	if len(rmax) > 0 && rmax[0] > 0 {
		o.rmax = rmax[0]
	}
	return ret
}

func (o *Options) rtop(cutoff float64) float64 {
	if cutoff < o.rmax {
		return cutoff
	}
	return o.rmax
}

//ProfileUsable samples the value of a type-only pairwise term for the
//type pair (t1,t2) over distance, up to the term's cutoff or the
//options' RMax, whichever is smaller.
func ProfileUsable(t score.Usable, t1, t2 dock.Type, options ...*Options) plotter.XYs {
	o := optionsOrDefault(options)
	top := o.rtop(t.Cutoff())
	xys := make(plotter.XYs, o.points)
	for i := range xys {
		r := o.rmin + (top-o.rmin)*float64(i)/float64(o.points-1)
		xys[i].X = r
		xys[i].Y = t.EvalType(t1, t2, r)
	}
	return xys
}

//ProfilePair samples a distance-additive term for a concrete pair of
//atoms (with their charges) over distance.
func ProfilePair(t score.DistanceAdditive, a, b dock.AtomBase, options ...*Options) plotter.XYs {
	o := optionsOrDefault(options)
	top := o.rtop(t.Cutoff())
	xys := make(plotter.XYs, o.points)
	for i := range xys {
		r := o.rmin + (top-o.rmin)*float64(i)/float64(o.points-1)
		xys[i].X = r
		xys[i].Y = t.Eval(a, b, r)
	}
	return xys
}

//Plot writes a PNG line chart of the given named profiles. Profiles
//are drawn in lexicographical order of their names, so colors are
//reproducible between runs.
func Plot(title, filename string, profiles map[string]plotter.XYs) error {
	if len(profiles) == 0 {
		return fmt.Errorf("dockplot: Nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "r (A)"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	args := make([]interface{}, 0, 2*len(names))
	for _, n := range names {
		args = append(args, n, profiles[n])
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(16*vg.Centimeter, 12*vg.Centimeter, filename)
}

func optionsOrDefault(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}

package bench

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot the tests per ray against the number of scene primitives and save
// the chart to plotFile. The output format is selected by the file extension.
func Plot(samples []Sample, plotFile string) error {
	if len(samples) == 0 {
		return ErrNoSizes
	}

	p := plot.New()
	p.Title.Text = "Intersection tests per ray"
	p.X.Label.Text = "Primitives"
	p.Y.Label.Text = "Tests per ray"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	boxTests := make(plotter.XYs, len(samples))
	primTests := make(plotter.XYs, len(samples))
	bruteTests := make(plotter.XYs, len(samples))
	for i, s := range samples {
		x := float64(s.Primitives)
		boxTests[i] = plotter.XY{X: x, Y: clampLog(s.BvhBoxTestsPerRay)}
		primTests[i] = plotter.XY{X: x, Y: clampLog(s.BvhPrimitiveTestsPerRay)}
		bruteTests[i] = plotter.XY{X: x, Y: clampLog(s.BruteTestsPerRay)}
	}

	err := plotutil.AddLinePoints(p,
		"BVH box tests", boxTests,
		"BVH primitive tests", primTests,
		"Brute force", bruteTests,
	)
	if err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, plotFile)
}

// Log axes cannot display values <= 0.
func clampLog(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	return v
}

package av1

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AdaptationTrace records a sample of the MSAC decoder's range register
// after each symbol, letting a caller characterize how quickly CDFs
// converge over the course of a decode session. It's purely diagnostic:
// no decode path depends on it being collected.
type AdaptationTrace struct {
	Ranges []float64
}

// Record appends one sample to the trace.
func (t *AdaptationTrace) Record(rng uint32) {
	t.Ranges = append(t.Ranges, float64(rng))
}

// Stats returns the mean and standard deviation of the recorded range
// values, a summary of whether CDF adaptation stays bounded rather than
// drifting to one extreme.
func (t *AdaptationTrace) Stats() (mean, stddev float64) {
	if len(t.Ranges) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(t.Ranges, nil)
	return mean, std
}

// PlotPNG renders the trace to a PNG at path, for interactive inspection
// of an individual decode session. No decode path or test in this package
// calls it.
func (t *AdaptationTrace) PlotPNG(path string) error {
	p := plot.New()
	p.Title.Text = "MSAC range trajectory"
	p.X.Label.Text = "symbol index"
	p.Y.Label.Text = "range"

	pts := make(plotter.XYs, len(t.Ranges))
	for i, v := range t.Ranges {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

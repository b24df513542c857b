// Public domain.

package pull

import (
	"image/color"
	"unicode/utf8"

	"github.com/aclements/go-moremath/stats"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot range of pulls.
const (
	Lo = -4.
	Hi = 4.
)

// Label derives the display name of a pull column: the column name
// without its final character.
func Label(parname string) string {
	_, n := utf8.DecodeLastRuneInString(parname)
	return parname[:len(parname)-n]
}

// Plot draws the normalized histogram of values over [Lo, Hi] and the
// unit normal density evaluated at the bin edges.
func Plot(values []float64, nbins int, parname string) (*hplot.Plot, error) {
	hist, err := Histogram(values, nbins, Lo, Hi)
	if err != nil {
		return nil, err
	}
	h := hbook.NewH1D(nbins, Lo, Hi)
	for i, d := range hist.Density {
		if d > 0 {
			h.Fill((hist.Edges[i]+hist.Edges[i+1])*.5, d)
		}
	}
	hh := hplot.NewH1D(h)
	hh.FillColor = color.NRGBA{G: 128, A: 255}

	pts := make(plotter.XYs, len(hist.Edges))
	for i, x := range hist.Edges {
		pts[i].X = x
		pts[i].Y = stats.StdNormal.PDF(x)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = color.NRGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(2)

	name := Label(parname)
	p := hplot.New()
	p.Title.Text = name
	p.X.Label.Text = "Pull (" + name + ")"
	p.Y.Label.Text = "Probability"
	p.Add(hh, l, hplot.NewGrid())
	return p, nil
}

// Save writes the plot to fn.  The image format follows the file
// extension: png, svg, pdf or eps.
func Save(p *hplot.Plot, fn string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}

// Public domain.

package pipeline

import (
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

type resultDoc struct {
	Model      string   `yaml:"model"`
	Source     string   `yaml:"source"`
	Seed       int      `yaml:"seed"`
	LogL       float64  `yaml:"logL"`
	Nobs       float64  `yaml:"nobs"`
	Npred      float64  `yaml:"npred"`
	Wall       float64  `yaml:"wallSeconds"`
	CPU        float64  `yaml:"cpuSeconds"`
	Parameters []parDoc `yaml:"parameters"`
}

type parDoc struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Error float64 `yaml:"error,omitempty"`
	Free  bool    `yaml:"free"`
}

// WriteYAML writes a summary of results: fit statistics and the
// parameters of the first fitted model of each run.
func WriteYAML(w io.Writer, rs []*Result) error {
	docs := make([]resultDoc, len(rs))
	for i, r := range rs {
		d := &docs[i]
		d.Model = r.Model
		d.Seed = r.Seed
		d.LogL = r.Stats.LogL
		d.Nobs = r.Stats.Nobs
		d.Npred = r.Stats.Npred
		d.Wall = r.Wall.Seconds()
		d.CPU = r.CPU.Seconds()
		if len(r.Fitted) == 0 {
			continue
		}
		m := r.Fitted[0]
		d.Source = m.Name
		for _, c := range m.Components {
			for _, p := range c.Pars {
				pd := parDoc{Name: p.Name, Value: p.Real(), Free: p.IsFree()}
				if pd.Free {
					pd.Error = p.RealError()
				}
				d.Parameters = append(d.Parameters, pd)
			}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Plot draws the maximum log likelihood of each run as a bar chart.
func Plot(rs []*Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Unbinned analysis"
	p.Y.Label.Text = "log likelihood"
	vals := make(plotter.Values, len(rs))
	names := make([]string, len(rs))
	for i, r := range rs {
		vals[i] = r.Stats.LogL
		names[i] = strings.TrimSuffix(filepath.Base(r.Model), ".xml")
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	p.Add(bars, plotter.NewGrid())
	p.NominalX(names...)
	return p, nil
}

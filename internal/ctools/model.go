// Public domain.

package ctools

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Library is a GammaLib model definition file.
type Library struct {
	XMLName xml.Name `xml:"source_library"`
	Title   string   `xml:"title,attr"`
	Models  []Model  `xml:"source"`
}

// Model is a single source or background model.
type Model struct {
	Name       string      `xml:"name,attr"`
	Type       string      `xml:"type,attr"`
	Instrument string      `xml:"instrument,attr"`
	Components []Component `xml:",any"`
}

// Component is a spectral, spatial, radial or temporal model component.
type Component struct {
	XMLName xml.Name
	Type    string      `xml:"type,attr"`
	File    string      `xml:"file,attr"`
	Pars    []Parameter `xml:"parameter"`
}

// Parameter is a model parameter.  Value, Error, Min and Max are in
// scaled units; the physical value is Value*Scale.
type Parameter struct {
	Name  string  `xml:"name,attr"`
	Value float64 `xml:"value,attr"`
	Error float64 `xml:"error,attr"`
	Scale float64 `xml:"scale,attr"`
	Min   string  `xml:"min,attr"`
	Max   string  `xml:"max,attr"`
	Free  string  `xml:"free,attr"`
}

// ReadModels decodes a model definition document.
func ReadModels(r io.Reader) ([]Model, error) {
	var lib Library
	if err := xml.NewDecoder(r).Decode(&lib); err != nil {
		return nil, err
	}
	return lib.Models, nil
}

// ReadModelFile reads a model definition file.
func ReadModelFile(fn string) ([]Model, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadModels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return m, nil
}

// Par returns the named parameter from any component of the model.
func (m Model) Par(name string) (Parameter, bool) {
	for _, c := range m.Components {
		for _, p := range c.Pars {
			if p.Name == name {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// NumPars returns the total number of parameters of the model.
func (m Model) NumPars() (n int) {
	for _, c := range m.Components {
		n += len(c.Pars)
	}
	return
}

// ScaleFactor returns Scale, or 1 if no scale is given.
func (p Parameter) ScaleFactor() float64 {
	if p.Scale == 0 {
		return 1
	}
	return p.Scale
}

// Real returns the physical value of the parameter.
func (p Parameter) Real() float64 { return p.Value * p.ScaleFactor() }

// RealError returns the physical error of the parameter.
func (p Parameter) RealError() float64 { return math.Abs(p.Error * p.ScaleFactor()) }

// IsFree reports whether the parameter was free in the fit.
func (p Parameter) IsFree() bool { return p.Free == "1" }

// Bounds returns the physical parameter limits, lo <= hi.  ok is false
// if either limit is absent.
func (p Parameter) Bounds() (lo, hi float64, ok bool) {
	lo, errLo := strconv.ParseFloat(p.Min, 64)
	hi, errHi := strconv.ParseFloat(p.Max, 64)
	if errLo != nil || errHi != nil {
		return 0, 0, false
	}
	s := p.ScaleFactor()
	lo, hi = lo*s, hi*s
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// String formats a parameter line.
func (p Parameter) String() string {
	s := parformat(p.Name, 1) + fmt.Sprintf("%g", p.Real())
	if p.IsFree() {
		s += fmt.Sprintf(" +/- %g", p.RealError())
	}
	if lo, hi, ok := p.Bounds(); ok {
		s += fmt.Sprintf(" [%g,%g]", lo, hi)
	}
	state := "fixed"
	if p.IsFree() {
		state = "free"
	}
	return s + fmt.Sprintf(" (%s,scale=%g)", state, p.ScaleFactor())
}

// String formats the model in the block layout of the toolkit.
func (m Model) String() string {
	var b strings.Builder
	inst := m.Instrument
	if inst == "" {
		inst = "all"
	}
	fmt.Fprintf(&b, "=== %s ===\n", m.Name)
	fmt.Fprintf(&b, "%s%s\n", parformat("Name", 0), m.Name)
	fmt.Fprintf(&b, "%s%s\n", parformat("Instruments", 0), inst)
	fmt.Fprintf(&b, "%s%s\n", parformat("Model type", 0), m.Type)
	fmt.Fprintf(&b, "%s%d\n", parformat("Number of parameters", 0), m.NumPars())
	for _, c := range m.Components {
		fmt.Fprintf(&b, "%s%d\n",
			parformat("Number of "+componentKind(c.XMLName.Local)+" par's", 0),
			len(c.Pars))
		for _, p := range c.Pars {
			b.WriteString(p.String())
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func componentKind(elem string) string {
	switch elem {
	case "spectrum":
		return "spectral"
	case "spatialModel":
		return "spatial"
	case "radialModel":
		return "radial"
	case "temporalModel":
		return "temporal"
	}
	return elem
}

// parformat pads a label with dots to a fixed column.
func parformat(s string, indent int) string {
	s = strings.Repeat(" ", indent+1) + s + " "
	for len(s) < 28 {
		s += "."
	}
	return s + ": "
}

// Public domain.

// Package ctools runs the simulate, select and fit tools of the ctools
// gamma-ray analysis package.
//
// Tools are configured through Pars, exactly as on the ctools command line,
// and are chained through Obs values.  An Obs produced by one tool is the
// input of the next.  Intermediate data live in a work directory as FITS
// files written by the tools themselves; this package never reads them.
// It only reads the model definition XML and the log files.
package ctools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// Executable names of the tools.
const (
	SimName    = "ctobssim"
	SelectName = "ctselect"
	LikeName   = "ctlike"
)

// ErrNoObs is returned by Run for a tool that needs an input observation
// but was created without one.
var ErrNoObs = errors.New("no input observation")

// ErrNoModel is returned by Run for a simulation without an input model.
var ErrNoModel = errors.New("no input model")

// Runner runs a toolkit executable with key=value arguments.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs tools as child processes.
type ExecRunner struct {
	BinDir         string // directory holding the executables.  "" searches PATH.
	Stdout, Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	path := name
	if r.BinDir > "" {
		path = filepath.Join(r.BinDir, name)
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Obs is the observation container handed from tool to tool.
type Obs struct {
	Dir    string // work directory
	Events string // event list
	Model  string // model definitions
	Log    string // log of the tool that produced the container

	// instrument response the events were simulated with
	Caldb, IRF string
}

// Models reads the model definitions of the container.
func (o *Obs) Models() ([]Model, error) {
	return ReadModelFile(o.Model)
}

// FitStats reads fit statistics from the log of the producing tool.
// It is meaningful only for an Obs returned by a fitter.
func (o *Obs) FitStats() (FitStats, error) {
	return ReadFitStatsFile(o.Log)
}

// Tool is a single configured toolkit invocation.
type Tool struct {
	Name string
	Pars Pars

	r   Runner
	dir string
	in  *Obs
	out *Obs
}

// NewSimulator creates an event simulation tool writing into dir.
// The model file is set with Pars.Filename("inmodel", fn).
func NewSimulator(r Runner, dir string) *Tool {
	return newTool(r, SimName, dir, nil)
}

// NewSelector creates an event selection tool operating on obs.
func NewSelector(r Runner, obs *Obs) *Tool {
	return newTool(r, SelectName, obsDir(obs), obs)
}

// NewFitter creates a maximum likelihood fitting tool operating on obs.
func NewFitter(r Runner, obs *Obs) *Tool {
	return newTool(r, LikeName, obsDir(obs), obs)
}

func newTool(r Runner, name, dir string, in *Obs) *Tool {
	return &Tool{Name: name, Pars: Pars{}, r: r, dir: dir, in: in}
}

func obsDir(obs *Obs) string {
	if obs == nil {
		return ""
	}
	return obs.Dir
}

// Run runs the tool.  On success Obs returns the resulting container.
func (t *Tool) Run(ctx context.Context) error {
	out := &Obs{
		Dir: t.dir,
		Log: filepath.Join(t.dir, t.Name+".log"),
	}
	t.Pars.Filename("logfile", out.Log)
	switch t.Name {
	case SimName:
		out.Model = t.Pars["inmodel"]
		if out.Model == "" {
			return fmt.Errorf("%s: %w", t.Name, ErrNoModel)
		}
		out.Events = filepath.Join(t.dir, "events.fits")
		out.Caldb = t.Pars["caldb"]
		out.IRF = t.Pars["irf"]
		t.Pars.Filename("outevents", out.Events)
	case SelectName:
		if t.in == nil {
			return fmt.Errorf("%s: %w", t.Name, ErrNoObs)
		}
		out.Model = t.in.Model
		out.Caldb, out.IRF = t.in.Caldb, t.in.IRF
		out.Events = filepath.Join(t.dir, "selected_events.fits")
		t.Pars.Filename("inobs", t.in.Events)
		t.Pars.Filename("outobs", out.Events)
	case LikeName:
		if t.in == nil {
			return fmt.Errorf("%s: %w", t.Name, ErrNoObs)
		}
		out.Events = t.in.Events
		out.Caldb, out.IRF = t.in.Caldb, t.in.IRF
		out.Model = filepath.Join(t.dir, "results.xml")
		t.Pars.Filename("inobs", t.in.Events)
		// an event list carries no response; the fit needs the one
		// the events were simulated with
		if t.in.Caldb > "" {
			t.Pars.String("caldb", t.in.Caldb)
		}
		if t.in.IRF > "" {
			t.Pars.String("irf", t.in.IRF)
		}
		t.Pars.Filename("inmodel", t.in.Model)
		t.Pars.Filename("outmodel", out.Model)
	default:
		return fmt.Errorf("unknown tool %q", t.Name)
	}
	if err := t.r.Run(ctx, t.Name, t.Pars.Args()); err != nil {
		return err
	}
	t.out = out
	return nil
}

// Obs returns the observation container produced by Run, or nil if the
// tool has not run successfully.
func (t *Tool) Obs() *Obs { return t.out }

// Public domain.

// Package pipeline implements the unbinned simulate, select and fit
// analysis used to check source models.
//
// Each run keeps its intermediate results in a private work directory.
// The fitted model definitions and fit statistics are read back and
// returned in a Result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/soniakeys/ctscripts/internal/ctools"
)

// Pipeline runs the analysis for one model at a time with fixed
// parameters.
type Pipeline struct {
	Params   *Params
	Runner   ctools.Runner
	Out      io.Writer // result output
	WorkRoot string    // parent of work directories.  "" uses os.TempDir.

	seeds *seeder
}

// New creates a Pipeline.
func New(p *Params, r ctools.Runner, out io.Writer) *Pipeline {
	return &Pipeline{Params: p, Runner: r, Out: out, seeds: newSeeder(p)}
}

// Result holds the outcome of one pipeline run.
type Result struct {
	Model  string // model definition file analysed
	Seed   int
	Fitted []ctools.Model // fitted models, source of interest first
	Stats  ctools.FitStats
	Wall   time.Duration
	CPU    time.Duration // child process CPU time
}

// Run simulates events for the model file, selects events within the
// selection region, fits the model to the selection and prints the first
// fitted model.
func (pl *Pipeline) Run(ctx context.Context, model string) (*Result, error) {
	p := pl.Params
	if pl.seeds == nil {
		pl.seeds = newSeeder(p)
	}
	fmt.Fprintln(pl.Out, "Model: "+model)

	wall0 := time.Now()
	cpu0 := childCPU()

	dir, err := os.MkdirTemp(pl.WorkRoot, "ctscripts-")
	if err != nil {
		return nil, err
	}
	if p.Keep {
		log.Println("work directory", dir)
	} else {
		defer os.RemoveAll(dir)
	}
	res := &Result{Model: model, Seed: pl.seeds.next()}

	// simulate events
	sim := ctools.NewSimulator(pl.Runner, dir)
	sim.Pars.Filename("inmodel", model)
	sim.Pars.String("caldb", p.Caldb)
	sim.Pars.String("irf", p.IRF)
	sim.Pars.Real("ra", p.RA)
	sim.Pars.Real("dec", p.Dec)
	sim.Pars.Real("rad", p.RadSim)
	sim.Pars.Real("tmin", p.TMin)
	sim.Pars.Real("tmax", p.TMax)
	sim.Pars.Real("emin", p.EMin)
	sim.Pars.Real("emax", p.EMax)
	sim.Pars.Integer("seed", res.Seed)
	sim.Pars.Integer("chatter", p.Chatter)
	if err := sim.Run(ctx); err != nil {
		return nil, err
	}

	// select events
	sel := ctools.NewSelector(pl.Runner, sim.Obs())
	sel.Pars.Real("ra", p.RA)
	sel.Pars.Real("dec", p.Dec)
	sel.Pars.Real("rad", p.RadSelect)
	sel.Pars.Real("tmin", p.TMin)
	sel.Pars.Real("tmax", p.TMax)
	sel.Pars.Real("emin", p.EMin)
	sel.Pars.Real("emax", p.EMax)
	sel.Pars.Integer("chatter", p.Chatter)
	if err := sel.Run(ctx); err != nil {
		return nil, err
	}

	// maximum likelihood fit
	like := ctools.NewFitter(pl.Runner, sel.Obs())
	like.Pars.Integer("chatter", p.Chatter)
	if err := like.Run(ctx); err != nil {
		return nil, err
	}

	if res.Fitted, err = like.Obs().Models(); err != nil {
		return nil, err
	}
	if len(res.Fitted) == 0 {
		return nil, errors.New(like.Obs().Model + ": no fitted models")
	}
	if res.Stats, err = like.Obs().FitStats(); err != nil {
		// statistics are informational only
		log.Println(err)
	}
	res.Wall = time.Since(wall0)
	res.CPU = childCPU() - cpu0

	fmt.Fprintln(pl.Out, res.Fitted[0])
	if p.Verbose {
		fmt.Fprintf(pl.Out, "logL %.3f  Nobs %.0f  Npred %.1f  seed %d\n",
			res.Stats.LogL, res.Stats.Nobs, res.Stats.Npred, res.Seed)
		fmt.Fprintf(pl.Out, "Wall %.3f s  CPU %.3f s\n",
			res.Wall.Seconds(), res.CPU.Seconds())
	}
	return res, nil
}

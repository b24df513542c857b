// Public domain.

// Package emprog implements the examplemodels command.
package emprog

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/soniakeys/exit"
	"gonum.org/v1/plot/vg"

	"github.com/soniakeys/ctscripts/internal/ctools"
	"github.com/soniakeys/ctscripts/internal/pipeline"
)

const versionString = "examplemodels version 0.1 Go source."
const copyrightString = "Public domain."

// plot file written unless -noshow
const plotFile = "examplemodels.png"

func Main() {
	defer exit.Handler()

	fmt.Println(os.Args[0])
	cl := parseCommandLine()
	p := readConfig(cl)

	fmt.Println("********************************")
	fmt.Println("* CTA unbinned analysis script *")
	fmt.Println("********************************")
	if p.Verbose {
		fmt.Println("Pointing:", p.Pointing())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var toolOut io.Writer
	if p.Verbose {
		toolOut = os.Stdout
	}
	runner := &ctools.ExecRunner{
		BinDir: p.BinDir,
		Stdout: toolOut,
		Stderr: os.Stderr,
	}
	pl := pipeline.New(p, runner, os.Stdout)

	var results []*pipeline.Result
	for _, m := range p.Models {
		r, err := pl.Run(ctx, cl.fixupCP(m))
		if err != nil {
			exit.Log(err)
		}
		results = append(results, r)
	}

	if cl.y > "" {
		writeResults(cl.y, results)
	}
	if cl.show {
		plotResults(results)
	}
}

type commandLine struct {
	dc   string // config file
	dp   string // data path
	y    string // yaml results file
	show bool
}

func parseCommandLine() *commandLine {
	cl := &commandLine{}
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	noshow := flag.Bool("noshow", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.dp, "p", "data", "")
	flag.StringVar(&cl.y, "y", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`Usage: examplemodels [OPTIONS]
     -h                  Display this usage message
     -noshow             Do not show data
     -v                  Display version and copyright
     -c <config-file>    Analysis configuration
     -p <path>           Data path (default "data")
     -y <results-file>   Write fit results as YAML
`)
	}
	flag.Parse()
	switch {
	case *dh:
		flag.Usage()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() != 0:
		flag.Usage()
		os.Exit(1)
	}
	cl.show = !*noshow
	return cl
}

// fixupCP joins relative file names with the data path.
func (cl *commandLine) fixupCP(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(cl.dp, fn)
}

// readConfig returns default parameters updated from the config file.
// A missing default config file is not an error.
func readConfig(cl *commandLine) *pipeline.Params {
	p := pipeline.Default()
	fn := cl.dc
	if fn == "" {
		fn = cl.fixupCP("examplemodels.config")
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.dc > "" {
			exit.Log(err)
		}
	} else {
		err = pipeline.ReadConfig(f, p)
		f.Close()
		if err != nil {
			exit.Log(err)
		}
	}
	if err := p.Validate(); err != nil {
		exit.Log(err)
	}
	return p
}

func writeResults(fn string, results []*pipeline.Result) {
	f, err := os.Create(fn)
	if err != nil {
		exit.Log(err)
	}
	if err = pipeline.WriteYAML(f, results); err != nil {
		f.Close()
		exit.Log(err)
	}
	if err = f.Close(); err != nil {
		exit.Log(err)
	}
}

func plotResults(results []*pipeline.Result) {
	if len(results) == 0 {
		return
	}
	p, err := pipeline.Plot(results)
	if err != nil {
		log.Println(err)
		return
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFile); err != nil {
		log.Println(err)
		return
	}
	fmt.Println("Plot written to", plotFile)
}

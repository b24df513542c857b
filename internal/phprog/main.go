// Public domain.

// Package phprog implements the pullhist command.
package phprog

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/ctscripts/internal/pull"
)

const versionString = "pullhist version 0.1 Go source."
const copyrightString = "Public domain."

const defaultBins = 50

const usage = "Usage: pullhist [options] filename parname [bins]\n"

// parseArgs interprets the positional arguments.  Ok is false when
// filename or parname is missing.  Arguments after bins are ignored.
func parseArgs(args []string) (filename, parname string, nbins int, ok bool, err error) {
	if len(args) < 2 {
		return
	}
	filename, parname, nbins, ok = args[0], args[1], defaultBins, true
	if len(args) > 2 {
		if nbins, err = strconv.Atoi(args[2]); err != nil {
			err = fmt.Errorf("Bad bins: %w", err)
		}
	}
	return
}

func Main() {
	defer exit.Handler()

	// parse command line
	flag.Usage = func() {
		os.Stderr.WriteString(usage)
		flag.PrintDefaults()
	}
	out := flag.String("o", "", "output image file (default <parname>.png)")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	filename, parname, nbins, ok, err := parseArgs(flag.Args())
	if !ok {
		os.Stdout.WriteString(usage)
		flag.CommandLine.SetOutput(os.Stdout)
		flag.PrintDefaults()
		os.Exit(0)
	}
	if err != nil {
		exit.Log(err)
	}
	if *out == "" {
		*out = parname + ".png"
	}

	// read values from CSV file
	values, err := pull.ReadPullFile(filename, parname)
	if err != nil {
		exit.Log(err)
	}
	s := pull.Summarize(values, pull.Lo, pull.Hi)
	fmt.Printf("%s: N %d  mean %.3f  std dev %.3f", parname, s.N, s.Mean, s.StdDev)
	if s.Outside > 0 {
		fmt.Printf("  (%d outside [%g,%g])", s.Outside, pull.Lo, pull.Hi)
	}
	fmt.Println()

	// histogram with expected distribution
	p, err := pull.Plot(values, nbins, parname)
	if err != nil {
		exit.Log(err)
	}
	if err = pull.Save(p, *out); err != nil {
		exit.Log(err)
	}
	fmt.Println("Histogram written to", *out)
}

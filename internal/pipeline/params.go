// Public domain.

package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DefaultModels lists the model files analysed when the configuration
// names none.  Names are relative to the data path.
var DefaultModels = []string{"crab.xml", "disk.xml", "gauss.xml", "shell.xml"}

// Params holds the fixed analysis parameters.
type Params struct {
	Caldb, IRF        string
	RA, Dec           float64 // pointing and selection center, degrees
	RadSim, RadSelect float64 // simulation and selection radius, degrees
	TMin, TMax        float64 // seconds
	EMin, EMax        float64 // TeV
	Chatter           int
	BinDir            string // location of toolkit executables
	Seed              int    // simulation seed when Repeatable
	Repeatable        bool
	Keep              bool // keep work directories
	Verbose           bool
	Models            []string
}

// Default returns the parameters of the unbinned analysis example.
func Default() *Params {
	return &Params{
		Caldb:     "irf",
		IRF:       "cta_dummy_irf",
		RA:        83.63,
		Dec:       22.01,
		RadSim:    10,
		TMin:      0,
		TMax:      1800,
		EMin:      .1,
		EMax:      100,
		RadSelect: 3,
		Chatter:   2,
		Seed:      1,
		Models:    append([]string{}, DefaultModels...),
	}
}

// Validate checks parameter consistency.
func (p *Params) Validate() error {
	switch {
	case p.TMin >= p.TMax:
		return errors.New("tmin must be less than tmax")
	case p.EMin <= 0 || p.EMin >= p.EMax:
		return errors.New("emin must be positive and less than emax")
	case p.RadSim <= 0 || p.RadSelect <= 0:
		return errors.New("radii must be positive")
	case p.Dec < -90 || p.Dec > 90:
		return errors.New("dec out of range")
	case len(p.Models) == 0:
		return errors.New("no models")
	}
	return nil
}

var rxSetting = regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+?)[ \t]*$`)

// ReadConfig applies a configuration file to p.
//
// Empty lines and lines beginning with # are ignored.  Other lines hold
// a keyword, a key = value setting, or the name of a model file ending
// in .xml.  Model files listed in the configuration replace the default
// list.
func ReadConfig(r io.Reader, p *Params) error {
	var modelSpec bool
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ls := strings.TrimSpace(sc.Text())
		if ls == "" || ls[0] == '#' {
			continue
		}
		switch ls {
		case "repeatable":
			p.Repeatable = true
			continue
		case "random":
			p.Repeatable = false
			continue
		case "keep":
			p.Keep = true
			continue
		case "nokeep":
			p.Keep = false
			continue
		case "verbose":
			p.Verbose = true
			continue
		case "quiet":
			p.Verbose = false
			continue
		}
		if ss := rxSetting.FindStringSubmatch(ls); ss != nil {
			if err := p.set(ss[1], ss[2]); err != nil {
				return fmt.Errorf("%v\nConfig file line: %s", err, ls)
			}
			continue
		}
		if strings.HasSuffix(ls, ".xml") {
			if !modelSpec {
				modelSpec = true
				p.Models = nil
			}
			p.Models = append(p.Models, ls)
			continue
		}
		return errors.New("Unrecognized line in config file: " + ls)
	}
	return sc.Err()
}

func (p *Params) set(key, val string) error {
	switch key {
	case "caldb":
		p.Caldb = val
		return nil
	case "irf":
		p.IRF = val
		return nil
	case "bindir":
		p.BinDir = val
		return nil
	case "chatter", "seed":
		i, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		if key == "seed" {
			p.Seed = i
		} else {
			p.Chatter = i
		}
		return nil
	}
	var f *float64
	switch key {
	case "ra":
		f = &p.RA
	case "dec":
		f = &p.Dec
	case "radsim":
		f = &p.RadSim
	case "radselect":
		f = &p.RadSelect
	case "tmin":
		f = &p.TMin
	case "tmax":
		f = &p.TMax
	case "emin":
		f = &p.EMin
	case "emax":
		f = &p.EMax
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	x, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return err
	}
	*f = x
	return nil
}

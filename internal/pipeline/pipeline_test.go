// Public domain.

package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/soniakeys/ctscripts/internal/ctools"
	"github.com/soniakeys/ctscripts/internal/pipeline"
)

const diskResults = `<source_library title="source library">
  <source name="Disk" type="DiffuseSource">
    <spectrum type="PowerLaw">
      <parameter name="Prefactor" scale="1e-16" value="5.5" error="0.2" min="1e-07" max="1000" free="1"/>
      <parameter name="Index" scale="-1" value="2.5" error="0.03" min="0" max="5" free="1"/>
    </spectrum>
    <spatialModel type="DiskFunction">
      <parameter name="Radius" scale="1" value="0.2" error="0.01" min="0.01" max="10" free="1"/>
    </spatialModel>
  </source>
</source_library>
`

const diskLog = ` Maximum log likelihood ....: -1520.25
 Observed events  (Nobs) ...: 812.000
 Predicted events (Npred) ..: 811.900 (Nobs - Npred = 0.1)
`

// toolkit fakes the ctools executables.  The fitter writes canned results.
type toolkit struct {
	calls map[string][]string
	fail  string
}

func (k *toolkit) Run(ctx context.Context, name string, args []string) error {
	if k.calls == nil {
		k.calls = map[string][]string{}
	}
	k.calls[name] = args
	if name == k.fail {
		return errors.New(name + ": exit status 1")
	}
	if name != ctools.LikeName {
		return nil
	}
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "outmodel="):
			if err := os.WriteFile(a[9:], []byte(diskResults), 0o644); err != nil {
				return err
			}
		case strings.HasPrefix(a, "logfile="):
			if err := os.WriteFile(a[8:], []byte(diskLog), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func newTest(t *testing.T, k *toolkit) (*pipeline.Pipeline, *bytes.Buffer) {
	var out bytes.Buffer
	p := pipeline.Default()
	p.Repeatable = true
	p.Seed = 42
	pl := pipeline.New(p, k, &out)
	pl.WorkRoot = t.TempDir()
	return pl, &out
}

func TestRun(t *testing.T) {
	k := &toolkit{}
	pl, out := newTest(t, k)
	res, err := pl.Run(context.Background(), "data/disk.xml")
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Model: data/disk.xml\n") {
		t.Fatalf("output begins %q", got)
	}
	if !strings.Contains(got, "=== Disk ===") ||
		!strings.Contains(got, "  Radius ...................: 0.2 +/- 0.01") {
		t.Fatalf("fitted model not printed:\n%s", got)
	}
	sim := k.calls[ctools.SimName]
	for _, a := range []string{"inmodel=data/disk.xml", "caldb=irf",
		"irf=cta_dummy_irf", "ra=83.63", "dec=22.01", "rad=10", "tmin=0",
		"tmax=1800", "emin=0.1", "emax=100", "seed=42"} {
		if !hasArg(sim, a) {
			t.Errorf("ctobssim missing %s in %v", a, sim)
		}
	}
	sel := k.calls[ctools.SelectName]
	for _, a := range []string{"ra=83.63", "dec=22.01", "rad=3", "tmin=0",
		"tmax=1800", "emin=0.1", "emax=100"} {
		if !hasArg(sel, a) {
			t.Errorf("ctselect missing %s in %v", a, sel)
		}
	}
	like := k.calls[ctools.LikeName]
	if !hasArg(like, "inmodel=data/disk.xml") {
		t.Error("ctlike not fitting the simulated model", like)
	}
	if !hasArg(like, "caldb=irf") || !hasArg(like, "irf=cta_dummy_irf") {
		t.Error("ctlike not using the simulation response", like)
	}
	if res.Stats.LogL != -1520.25 || res.Stats.Nobs != 812 {
		t.Errorf("stats %+v", res.Stats)
	}
	if res.Fitted[0].Name != "Disk" || res.Seed != 42 {
		t.Errorf("result %+v", res)
	}
}

func TestRunWorkDirRemoved(t *testing.T) {
	pl, _ := newTest(t, &toolkit{})
	if _, err := pl.Run(context.Background(), "m.xml"); err != nil {
		t.Fatal(err)
	}
	ents, err := os.ReadDir(pl.WorkRoot)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Fatal("work directory left behind")
	}
}

func TestRunStageFailure(t *testing.T) {
	for _, stage := range []string{ctools.SimName, ctools.SelectName, ctools.LikeName} {
		k := &toolkit{fail: stage}
		pl, out := newTest(t, k)
		if _, err := pl.Run(context.Background(), "m.xml"); err == nil {
			t.Errorf("%s failure not reported", stage)
		}
		if strings.Contains(out.String(), "===") {
			t.Errorf("%s failure printed a model", stage)
		}
	}
}

func TestRandomSeeds(t *testing.T) {
	k := &toolkit{}
	var out bytes.Buffer
	p := pipeline.Default()
	pl := pipeline.New(p, k, &out)
	pl.WorkRoot = t.TempDir()
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		res, err := pl.Run(context.Background(), "m.xml")
		if err != nil {
			t.Fatal(err)
		}
		if res.Seed < 1 {
			t.Fatal("seed", res.Seed)
		}
		seen[res.Seed] = true
	}
	if len(seen) < 2 {
		t.Fatal("random seeds repeat", seen)
	}
}

func TestWriteYAML(t *testing.T) {
	pl, _ := newTest(t, &toolkit{})
	res, err := pl.Run(context.Background(), "data/disk.xml")
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := pipeline.WriteYAML(&b, []*pipeline.Result{res}); err != nil {
		t.Fatal(err)
	}
	var docs []struct {
		Model      string  `yaml:"model"`
		Source     string  `yaml:"source"`
		LogL       float64 `yaml:"logL"`
		Parameters []struct {
			Name string `yaml:"name"`
		} `yaml:"parameters"`
	}
	if err := yaml.Unmarshal(b.Bytes(), &docs); err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Source != "Disk" || docs[0].LogL != -1520.25 ||
		len(docs[0].Parameters) != 3 {
		t.Fatalf("yaml:\n%s", b.String())
	}
}

func TestPlot(t *testing.T) {
	rs := []*pipeline.Result{
		{Model: "data/crab.xml", Stats: ctools.FitStats{LogL: -100}},
		{Model: "data/disk.xml", Stats: ctools.FitStats{LogL: -80}},
	}
	p, err := pipeline.Plot(rs)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text == "" {
		t.Fatal("untitled plot")
	}
}

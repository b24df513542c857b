// Public domain.

package pipeline

import (
	"math"
	"time"

	xrand "golang.org/x/exp/rand"
)

// seeder supplies simulation seeds.  Repeatable runs use the configured
// seed for every model; otherwise seeds come from a clock seeded PCG.
type seeder struct {
	rnd        *xrand.Rand
	seed       int
	repeatable bool
}

func newSeeder(p *Params) *seeder {
	s := &seeder{
		rnd:        xrand.New(&xrand.PCGSource{}),
		seed:       p.Seed,
		repeatable: p.Repeatable,
	}
	if !s.repeatable {
		s.rnd.Seed(uint64(time.Now().UnixNano()))
	}
	return s
}

func (s *seeder) next() int {
	if s.repeatable {
		return s.seed
	}
	return 1 + s.rnd.Intn(math.MaxInt32-1)
}

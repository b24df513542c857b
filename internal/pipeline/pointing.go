// Public domain.

package pipeline

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// epoch of the galactic pole used by mcoord.EqToGal, as a Julian year
var epochB1950 = base.JDEToJulianYear(base.BesselianYearToJDE(1950))

// Galactic converts the J2000 pointing to galactic longitude and latitude
// in degrees, longitude in [0, 360).
func (p *Params) Galactic() (l, b float64) {
	eq := mcoord.Equatorial{
		RA:  unit.RAFromDeg(p.RA),
		Dec: unit.AngleFromDeg(p.Dec),
	}
	precess.Position(&eq, &eq, 2000, epochB1950, 0, 0)
	g := new(mcoord.Galactic).EqToGal(&eq)
	l = math.Mod(g.Lon.Deg(), 360)
	if l < 0 {
		l += 360
	}
	return l, g.Lat.Deg()
}

// Pointing formats the pointing for display.
func (p *Params) Pointing() string {
	l, b := p.Galactic()
	return fmt.Sprintf("RA %.2s  Dec %.1s  (l %.3f, b %.3f)",
		sexa.FmtRA(unit.RAFromDeg(p.RA)),
		sexa.FmtAngle(unit.AngleFromDeg(p.Dec)), l, b)
}

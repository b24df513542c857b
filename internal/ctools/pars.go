// Public domain.

package ctools

import (
	"sort"
	"strconv"
)

// Pars holds tool parameters.  Values are kept in the text form the
// toolkit executables accept on the command line.
type Pars map[string]string

// Filename sets a file name parameter.
func (p Pars) Filename(key, fn string) { p[key] = fn }

// String sets a string parameter.
func (p Pars) String(key, s string) { p[key] = s }

// Real sets a floating point parameter.
func (p Pars) Real(key string, x float64) {
	p[key] = strconv.FormatFloat(x, 'g', -1, 64)
}

// Integer sets an integer parameter.
func (p Pars) Integer(key string, i int) { p[key] = strconv.Itoa(i) }

// Bool sets a boolean parameter using the toolkit's yes/no convention.
func (p Pars) Bool(key string, b bool) {
	if b {
		p[key] = "yes"
	} else {
		p[key] = "no"
	}
}

// Args renders parameters as key=value words, sorted by key so that
// command lines are reproducible.
func (p Pars) Args() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, len(keys))
	for i, k := range keys {
		args[i] = k + "=" + p[k]
	}
	return args
}

// Package selected picks the firmware's board and feature set from TinyGo
// build tags, as printed by `bspctl resolve --tags`.
//
// A board_<name> tag links exactly one board package; without one the
// Raspberry Pi Pico is used. The bsp_features tag marks an explicit feature
// set: bsp_<feature> tags then name every enabled feature, and none means
// none. Without bsp_features the board's default features apply.
package selected

import (
	"sort"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

var (
	explicit bool
	tagged   []string
)

// Board returns the board linked by the build tags.
func Board() boards.Board {
	b, err := boards.Lookup(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Features returns the enabled feature names, sorted.
func Features() []string {
	out := append([]string(nil), tagged...)
	if !explicit && len(out) == 0 {
		m := Board().Manifest
		out = append(out, m.Features[types.DefaultFeature]...)
	}
	sort.Strings(out)
	return out
}

func enable(f string) { tagged = append(tagged, f) }

// Package all links every board support package into the registry.
package all

import (
	_ "github.com/danforbes/rp-hal/boards/featherrp2040"
	_ "github.com/danforbes/rp-hal/boards/itsybitsyrp2040"
	_ "github.com/danforbes/rp-hal/boards/promicrorp2040"
	_ "github.com/danforbes/rp-hal/boards/qtpyrp2040"
	_ "github.com/danforbes/rp-hal/boards/rp2040zero"
	_ "github.com/danforbes/rp-hal/boards/rppico"
	_ "github.com/danforbes/rp-hal/boards/tiny2040"
	_ "github.com/danforbes/rp-hal/boards/xiaorp2040"
)

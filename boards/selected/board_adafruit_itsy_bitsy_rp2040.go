//go:build board_adafruit_itsy_bitsy_rp2040

package selected

import "github.com/danforbes/rp-hal/boards/itsybitsyrp2040"

const name = itsybitsyrp2040.Name

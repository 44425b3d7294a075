//go:build board_adafruit_feather_rp2040

package selected

import "github.com/danforbes/rp-hal/boards/featherrp2040"

const name = featherrp2040.Name

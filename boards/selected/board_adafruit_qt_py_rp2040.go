//go:build board_adafruit_qt_py_rp2040

package selected

import "github.com/danforbes/rp-hal/boards/qtpyrp2040"

const name = qtpyrp2040.Name

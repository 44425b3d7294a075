//go:build board_pimoroni_tiny2040

package selected

import "github.com/danforbes/rp-hal/boards/tiny2040"

const name = tiny2040.Name

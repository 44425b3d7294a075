//go:build board_waveshare_rp2040_zero

package selected

import "github.com/danforbes/rp-hal/boards/rp2040zero"

const name = rp2040zero.Name

//go:build board_seeeduino_xiao_rp2040

package selected

import "github.com/danforbes/rp-hal/boards/xiaorp2040"

const name = xiaorp2040.Name

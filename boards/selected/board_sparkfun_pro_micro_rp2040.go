//go:build board_sparkfun_pro_micro_rp2040

package selected

import "github.com/danforbes/rp-hal/boards/promicrorp2040"

const name = promicrorp2040.Name

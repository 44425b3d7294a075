//go:build bsp_rt

package selected

import "github.com/danforbes/rp-hal/boards"

func init() { enable(boards.FeatRT) }

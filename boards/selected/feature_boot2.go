//go:build bsp_boot2

package selected

import "github.com/danforbes/rp-hal/boards"

func init() { enable(boards.FeatBoot2) }

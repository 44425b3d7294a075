//go:build bsp_critical_section_impl

package selected

import "github.com/danforbes/rp-hal/boards"

func init() { enable(boards.FeatCriticalSection) }

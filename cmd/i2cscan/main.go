// I2cscan probes every 7-bit address on the selected board's first default
// I2C bus and prints the ones that acknowledge.
package main

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/boards/selected"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/conv"
)

// Addresses outside 0x08..0x77 are reserved.
const (
	firstAddr = 0x08
	lastAddr  = 0x77
)

func main() {
	time.Sleep(2 * time.Second)

	b := selected.Board()
	id, ok := firstI2C(b)
	if !ok {
		println("Error: i2cscan:", b.Name(), "has no default I2C bus")
		return
	}
	bus, err := b.OpenI2C(platform.Default().I2C, id)
	if err != nil {
		println("Error: i2cscan:", err.Error())
		return
	}

	for {
		println("Info: i2cscan: scanning", b.Name(), id)
		found := scan(bus)
		for _, a := range found {
			println("  device at", conv.Hex(uint64(a), 2))
		}
		println("Info: i2cscan:", conv.Dec(len(found)), "device(s)")
		time.Sleep(5 * time.Second)
	}
}

func firstI2C(b boards.Board) (string, bool) {
	for _, bd := range b.Manifest.Buses {
		if bd.Kind == types.BusI2C {
			return bd.ID, true
		}
	}
	return "", false
}

// scan reads one byte from every address; a nil error means an ACK.
func scan(bus drivers.I2C) []uint16 {
	var found []uint16
	rx := make([]byte, 1)
	for a := uint16(firstAddr); a <= lastAddr; a++ {
		if err := bus.Tx(a, nil, rx); err == nil {
			found = append(found, a)
		}
	}
	return found
}

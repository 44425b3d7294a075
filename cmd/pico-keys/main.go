// Pico-keys brings up a Raspberry Pi Pico carrying a Waveshare 2.7" e-paper
// HAT: three keys light the on-board LED and the panel's SPI and control
// lines are configured. Drawing to the panel is left to a display driver.
package main

import (
	"context"
	"time"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/boards/rppico"
	"github.com/danforbes/rp-hal/bus"
	"github.com/danforbes/rp-hal/pinmux"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/services/boardinfo"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/conv"
)

// HAT wiring, by Pico silkscreen label.
var keyLabels = []string{"GP15", "GP17", "GP2"}

const (
	epdHz       = 4_000_000
	pollEvery   = 20 * time.Millisecond
	resetPulse  = 10 * time.Millisecond
	lookupAfter = time.Second
)

// epaper is the panel wiring: SPI1 with SCK GP10, SDO GP11, no SDI, plus
// chip select, data/command, reset and busy lines.
type epaper struct {
	spi  drivers.SPI
	cs   platform.Pin
	dc   platform.Pin
	rst  platform.Pin
	busy platform.Pin
}

func bringEPaper(f platform.Factories) (*epaper, error) {
	bd := boards.SPIBus("spi1", rppico.GP10, rppico.GP11, -1, epdHz)
	if err := pinmux.Check(bd); err != nil {
		return nil, err
	}
	spi, err := f.SPI.Open(bd)
	if err != nil {
		return nil, err
	}
	e := &epaper{spi: spi}
	if e.cs, err = platform.Output(f.Pins, rppico.GP9, true); err != nil {
		return nil, err
	}
	if e.dc, err = platform.Output(f.Pins, rppico.GP8, false); err != nil {
		return nil, err
	}
	if e.rst, err = platform.Output(f.Pins, rppico.GP12, true); err != nil {
		return nil, err
	}
	if e.busy, err = platform.Input(f.Pins, rppico.GP13, platform.PullUp); err != nil {
		return nil, err
	}
	return e, nil
}

// reset pulses RST low; the panel then raises BUSY until it is ready.
func (e *epaper) reset() {
	e.rst.Set(false)
	time.Sleep(resetPulse)
	e.rst.Set(true)
	time.Sleep(resetPulse)
}

// keySpecs resolves the key labels through the boardinfo service.
func keySpecs(ctx context.Context, conn *bus.Connection) ([]keySpec, int, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupAfter)
	defer cancel()

	var specs []keySpec
	for i, label := range keyLabels {
		p, err := boardinfo.LookupPin(ctx, conn, label)
		if err != nil {
			return nil, 0, err
		}
		specs = append(specs, keySpec{name: "key" + conv.Dec(i), gpio: p.GPIO})
	}
	led, err := boardinfo.LookupPin(ctx, conn, "LED")
	if err != nil {
		return nil, 0, err
	}
	return specs, led.GPIO, nil
}

func main() {
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	b := bus.NewBus(4)
	infoConn := b.NewConnection("boardinfo")
	appConn := b.NewConnection("keys")

	board, err := boards.Lookup(rppico.Name)
	if err != nil {
		println("Error: pico-keys:", err.Error())
		return
	}
	if err := boardinfo.New(board, board.Manifest.Features[types.DefaultFeature]).Start(ctx, infoConn); err != nil {
		println("Error: pico-keys: boardinfo:", err.Error())
		return
	}

	f := platform.Default()
	specs, led, err := keySpecs(ctx, appConn)
	if err != nil {
		println("Error: pico-keys: pin lookup:", err.Error())
		return
	}
	pad, err := newKeypad(f.Pins, led, specs)
	if err != nil {
		println("Error: pico-keys: keys:", err.Error())
		return
	}

	epd, err := bringEPaper(f)
	if err != nil {
		println("Error: pico-keys: e-paper:", err.Error())
		return
	}
	epd.reset()
	println("Info: pico-keys: ready, e-paper busy =", epd.busy.Get())

	tick := time.NewTicker(pollEvery)
	defer tick.Stop()
	for range tick.C {
		pad.poll(appConn)
	}
}

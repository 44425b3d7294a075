// Package boards holds the board support package registry and the pieces
// every RP2040 board manifest shares.
package boards

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/pinmux"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/types"
)

// Board is one registered board support package.
type Board struct {
	Manifest types.Manifest
}

func (b Board) Name() string { return b.Manifest.Identity.Name }

// PinByLabel looks a silkscreen label up, ignoring case.
func (b Board) PinByLabel(label string) (types.PinAlias, error) {
	if p, ok := b.Manifest.Pin(label); ok {
		return p, nil
	}
	return types.PinAlias{}, errcode.New(errcode.UnknownPin, "boards.PinByLabel", fmt.Sprintf("%s has no pin %q", b.Name(), label))
}

// PinsByFunction returns every alias tagged with f, in GPIO order.
func (b Board) PinsByFunction(f types.Function) []types.PinAlias {
	var out []types.PinAlias
	for _, p := range b.Manifest.Pins {
		if p.Has(f) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].GPIO < out[j].GPIO })
	return out
}

// Aliases returns every label bound to gpio.
func (b Board) Aliases(gpio int) []string {
	var out []string
	for _, p := range b.Manifest.Pins {
		if p.GPIO == gpio {
			out = append(out, p.Label)
		}
	}
	return out
}

// Bus returns the default wiring of bus id.
func (b Board) Bus(id string) (types.BusDefault, error) {
	if bus, ok := b.Manifest.Bus(id); ok {
		return bus, nil
	}
	return types.BusDefault{}, errcode.New(errcode.UnknownBus, "boards.Bus", fmt.Sprintf("%s has no %s", b.Name(), id))
}

// LED returns the GPIO labelled LED, else the lowest pin tagged led, else -1.
func (b Board) LED() int {
	if p, ok := b.Manifest.Pin("LED"); ok {
		return p.GPIO
	}
	if leds := b.PinsByFunction(types.FuncLED); len(leds) > 0 {
		return leds[0].GPIO
	}
	return -1
}

// wiring returns bus id checked against the pin-mux table.
func (b Board) wiring(id string, kind types.BusKind) (types.BusDefault, error) {
	bus, err := b.Bus(id)
	if err != nil {
		return bus, err
	}
	if bus.Kind != kind {
		return bus, errcode.New(errcode.UnknownBus, "boards.Bus", fmt.Sprintf("%s %s is %s, not %s", b.Name(), id, bus.Kind, kind))
	}
	return bus, pinmux.Check(bus)
}

// OpenI2C configures the board default wiring of I²C bus id.
func (b Board) OpenI2C(f platform.I2CFactory, id string) (drivers.I2C, error) {
	bus, err := b.wiring(id, types.BusI2C)
	if err != nil {
		return nil, err
	}
	return f.Open(bus)
}

func (b Board) OpenSPI(f platform.SPIFactory, id string) (drivers.SPI, error) {
	bus, err := b.wiring(id, types.BusSPI)
	if err != nil {
		return nil, err
	}
	return f.Open(bus)
}

func (b Board) OpenUART(f platform.UARTFactory, id string) (io.ReadWriter, error) {
	bus, err := b.wiring(id, types.BusUART)
	if err != nil {
		return nil, err
	}
	return f.Open(bus)
}

// Bring configures every default bus of the board.
func (b Board) Bring(f platform.Factories) (*platform.Buses, error) {
	return platform.Bring(b.Manifest, f)
}

// String renders "name version".
func (b Board) String() string {
	return strings.TrimSpace(b.Manifest.Identity.Name + " " + b.Manifest.Identity.Version)
}

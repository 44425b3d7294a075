// Package rp2040zero is the board support package for the Waveshare RP2040-Zero.
package rp2040zero

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "waveshare-rp2040-zero"
	Version = "0.5.0"
)

// GPIO numbers by silkscreen label.
const (
	GP0    = 0
	GP1    = 1
	GP2    = 2
	GP3    = 3
	GP4    = 4
	GP5    = 5
	GP6    = 6
	GP7    = 7
	GP8    = 8
	GP9    = 9
	GP10   = 10
	GP11   = 11
	GP12   = 12
	GP13   = 13
	GP14   = 14
	GP15   = 15
	WS2812 = 16

	GP26 = 26
	GP27 = 27
	GP28 = 28
	GP29 = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("GP0", GP0, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP1", GP1, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP2", GP2, types.FuncGPIO),
		boards.Alias("GP3", GP3, types.FuncGPIO),
		boards.Alias("GP4", GP4, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP5", GP5, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP6", GP6, types.FuncGPIO),
		boards.Alias("GP7", GP7, types.FuncGPIO),
		boards.Alias("GP8", GP8, types.FuncGPIO),
		boards.Alias("GP9", GP9, types.FuncGPIO),
		boards.Alias("GP10", GP10, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP11", GP11, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP12", GP12, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP13", GP13, types.FuncGPIO),
		boards.Alias("GP14", GP14, types.FuncGPIO),
		boards.Alias("GP15", GP15, types.FuncGPIO),
		boards.Alias("WS2812", WS2812, types.FuncWS2812, types.FuncPIO),
		boards.Alias("GP26", GP26, types.FuncGPIO, types.FuncADC),
		boards.Alias("GP27", GP27, types.FuncGPIO, types.FuncADC),
		boards.Alias("GP28", GP28, types.FuncGPIO, types.FuncADC),
		boards.Alias("GP29", GP29, types.FuncGPIO, types.FuncADC),
	}
}

func Manifest() types.Manifest {
	return boards.Standard(boards.Spec{
		Name:        Name,
		Version:     Version,
		Description: "Board support package for the Waveshare RP2040-Zero",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c0", GP4, GP5, 400_000),
			boards.SPIBus("spi1", GP10, GP11, GP12, 0),
			boards.UARTBus("uart0", GP0, GP1, 115_200),
		},
		DevDeps: []types.Dependency{
			boards.DevPanicHalt,
			boards.DevEmbeddedHAL,
			boards.DevSmartLEDs,
			boards.DevWS2812PIO,
			boards.DevPIO,
			boards.DevFugit,
		},
	})
}

func init() { boards.Register(Manifest) }

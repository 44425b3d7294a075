// Package tiny2040 is the board support package for the Pimoroni Tiny 2040.
package tiny2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "pimoroni-tiny2040"
	Version = "0.5.0"
)

// GPIO numbers by silkscreen label.
const (
	GP0 = 0
	GP1 = 1
	GP2 = 2
	GP3 = 3
	GP4 = 4
	GP5 = 5
	GP6 = 6
	GP7 = 7

	// RGB LED, active low.
	LEDRed   = 18
	LEDGreen = 19
	LEDBlue  = 20
	Boot     = 23

	A0 = 26
	A1 = 27
	A2 = 28
	A3 = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("GP0", GP0, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP1", GP1, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP2", GP2, types.FuncGPIO),
		boards.Alias("GP3", GP3, types.FuncGPIO),
		boards.Alias("GP4", GP4, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP5", GP5, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP6", GP6, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP7", GP7, types.FuncGPIO, types.FuncSPI),
		boards.AliasNote("LED_RED", LEDRed, "active low", types.FuncLED, types.FuncPWM),
		boards.AliasNote("LED_GREEN", LEDGreen, "active low", types.FuncLED, types.FuncPWM),
		boards.AliasNote("LED_BLUE", LEDBlue, "active low", types.FuncLED, types.FuncPWM),
		boards.AliasNote("BOOT", Boot, "active low", types.FuncButton),
		boards.Alias("A0", A0, types.FuncGPIO, types.FuncADC),
		boards.Alias("A1", A1, types.FuncGPIO, types.FuncADC),
		boards.Alias("A2", A2, types.FuncGPIO, types.FuncADC),
		boards.Alias("A3", A3, types.FuncGPIO, types.FuncADC),
	}
}

func Manifest() types.Manifest {
	return boards.Standard(boards.Spec{
		Name:        Name,
		Version:     Version,
		Description: "Board support package for the Pimoroni Tiny 2040",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c0", GP4, GP5, 400_000),
			boards.SPIBus("spi0", GP6, GP7, -1, 0),
			boards.UARTBus("uart0", GP0, GP1, 115_200),
		},
		DevDeps: []types.Dependency{
			boards.DevPanicHalt,
			boards.DevEmbeddedHAL,
			boards.DevFugit,
		},
	})
}

func init() { boards.Register(Manifest) }

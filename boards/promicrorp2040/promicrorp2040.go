// Package promicrorp2040 is the board support package for the SparkFun Pro Micro RP2040.
package promicrorp2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "sparkfun-pro-micro-rp2040"
	Version = "0.5.0"
)

// GPIO numbers by silkscreen label.
const (
	TX  = 0
	RX  = 1
	GP2 = 2
	GP3 = 3
	GP4 = 4
	GP5 = 5
	GP6 = 6
	GP7 = 7
	GP8 = 8
	GP9 = 9

	SDA    = 16
	SCL    = 17
	CIPO   = 20
	CS     = 21
	SCK    = 22
	COPI   = 23
	WS2812 = 25

	A0 = 26
	A1 = 27
	A2 = 28
	A3 = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("TX", TX, types.FuncGPIO, types.FuncUART),
		boards.Alias("RX", RX, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP2", GP2, types.FuncGPIO),
		boards.Alias("GP3", GP3, types.FuncGPIO),
		boards.Alias("GP4", GP4, types.FuncGPIO),
		boards.Alias("GP5", GP5, types.FuncGPIO),
		boards.Alias("GP6", GP6, types.FuncGPIO),
		boards.Alias("GP7", GP7, types.FuncGPIO),
		boards.Alias("GP8", GP8, types.FuncGPIO),
		boards.Alias("GP9", GP9, types.FuncGPIO),
		boards.AliasNote("SDA", SDA, "Qwiic", types.FuncGPIO, types.FuncI2C),
		boards.AliasNote("SCL", SCL, "Qwiic", types.FuncGPIO, types.FuncI2C),
		boards.Alias("CIPO", CIPO, types.FuncGPIO, types.FuncSPI),
		boards.Alias("CS", CS, types.FuncGPIO, types.FuncSPI),
		boards.Alias("SCK", SCK, types.FuncGPIO, types.FuncSPI),
		boards.Alias("COPI", COPI, types.FuncGPIO, types.FuncSPI),
		boards.Alias("WS2812", WS2812, types.FuncWS2812, types.FuncPIO),
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
		Description: "Board support package for the SparkFun Pro Micro RP2040",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c0", SDA, SCL, 400_000),
			spiWithCS(),
			boards.UARTBus("uart0", TX, RX, 115_200),
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

func spiWithCS() types.BusDefault {
	b := boards.SPIBus("spi0", SCK, COPI, CIPO, 0)
	b.Pins[types.SigCS] = CS
	return b
}

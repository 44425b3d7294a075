// Package featherrp2040 is the board support package for the Adafruit Feather RP2040.
package featherrp2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "adafruit-feather-rp2040"
	Version = "0.6.0"
)

// GPIO numbers by silkscreen label.
const (
	TX       = 0
	RX       = 1
	SDA      = 2
	SCL      = 3
	D4       = 6
	D5       = 7
	D6       = 8
	D9       = 9
	D10      = 10
	D11      = 11
	D12      = 12
	D13      = 13
	LED      = D13
	NeoPixel = 16
	SCLK     = 18
	MOSI     = 19
	MISO     = 20
	D24      = 24
	D25      = 25
	A0       = 26
	A1       = 27
	A2       = 28
	A3       = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("TX", TX, types.FuncGPIO, types.FuncUART),
		boards.Alias("RX", RX, types.FuncGPIO, types.FuncUART),
		boards.AliasNote("SDA", SDA, "STEMMA QT", types.FuncGPIO, types.FuncI2C),
		boards.AliasNote("SCL", SCL, "STEMMA QT", types.FuncGPIO, types.FuncI2C),
		boards.Alias("D4", D4, types.FuncGPIO),
		boards.Alias("D5", D5, types.FuncGPIO),
		boards.Alias("D6", D6, types.FuncGPIO),
		boards.Alias("D9", D9, types.FuncGPIO),
		boards.Alias("D10", D10, types.FuncGPIO),
		boards.Alias("D11", D11, types.FuncGPIO),
		boards.Alias("D12", D12, types.FuncGPIO),
		boards.Alias("D13", D13, types.FuncGPIO, types.FuncLED),
		boards.AliasNote("LED", LED, "red LED next to USB", types.FuncLED),
		boards.Alias("NEOPIXEL", NeoPixel, types.FuncWS2812, types.FuncPIO),
		boards.Alias("SCLK", SCLK, types.FuncGPIO, types.FuncSPI),
		boards.Alias("MOSI", MOSI, types.FuncGPIO, types.FuncSPI),
		boards.Alias("MISO", MISO, types.FuncGPIO, types.FuncSPI),
		boards.Alias("D24", D24, types.FuncGPIO),
		boards.Alias("D25", D25, types.FuncGPIO),
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
		Description: "Board support package for the Adafruit Feather RP2040",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c1", SDA, SCL, 400_000),
			boards.SPIBus("spi0", SCLK, MOSI, MISO, 0),
			boards.UARTBus("uart0", TX, RX, 115_200),
		},
		Deps: []types.Dependency{
			{Name: "fugit", Req: "0.3.5"},
		},
		DevDeps: []types.Dependency{
			boards.DevPanicHalt,
			boards.DevEmbeddedHAL,
			boards.DevSmartLEDs,
			boards.DevWS2812PIO,
			boards.DevPIO,
			boards.DevNB,
		},
	})
}

func init() { boards.Register(Manifest) }

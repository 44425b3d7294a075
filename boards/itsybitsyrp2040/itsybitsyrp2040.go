// Package itsybitsyrp2040 is the board support package for the Adafruit ItsyBitsy RP2040.
package itsybitsyrp2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "adafruit-itsy-bitsy-rp2040"
	Version = "0.6.0"
)

// GPIO numbers by silkscreen label.
const (
	TX            = 0
	RX            = 1
	SDA           = 2
	SCL           = 3
	D4            = 4
	D3            = 5
	D7            = 6
	D9            = 7
	D10           = 8
	D11           = 9
	D12           = 10
	D13           = 11
	LED           = D13
	D2            = 12
	Button        = 13
	D5            = 14
	NeoPixelPower = 16
	NeoPixel      = 17
	SCK           = 18
	MOSI          = 19
	MISO          = 20
	D24           = 24
	D25           = 25
	A0            = 26
	A1            = 27
	A2            = 28
	A3            = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("TX", TX, types.FuncGPIO, types.FuncUART),
		boards.Alias("RX", RX, types.FuncGPIO, types.FuncUART),
		boards.Alias("SDA", SDA, types.FuncGPIO, types.FuncI2C),
		boards.Alias("SCL", SCL, types.FuncGPIO, types.FuncI2C),
		boards.Alias("D4", D4, types.FuncGPIO),
		boards.Alias("D3", D3, types.FuncGPIO),
		boards.Alias("D7", D7, types.FuncGPIO),
		boards.Alias("D9", D9, types.FuncGPIO),
		boards.Alias("D10", D10, types.FuncGPIO),
		boards.Alias("D11", D11, types.FuncGPIO),
		boards.Alias("D12", D12, types.FuncGPIO),
		boards.Alias("D13", D13, types.FuncGPIO, types.FuncLED),
		boards.Alias("LED", LED, types.FuncLED),
		boards.Alias("D2", D2, types.FuncGPIO),
		boards.AliasNote("BUTTON", Button, "BOOT button, active low", types.FuncButton),
		boards.AliasNote("D5", D5, "5V level-shifted output", types.FuncGPIO),
		boards.Alias("NEOPIXEL_POWER", NeoPixelPower, types.FuncPower),
		boards.Alias("NEOPIXEL", NeoPixel, types.FuncWS2812, types.FuncPIO),
		boards.Alias("SCK", SCK, types.FuncGPIO, types.FuncSPI),
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
		Description: "Board support package for the Adafruit ItsyBitsy RP2040",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c1", SDA, SCL, 400_000),
			boards.SPIBus("spi0", SCK, MOSI, MISO, 0),
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
		},
	})
}

func init() { boards.Register(Manifest) }

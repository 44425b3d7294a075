// Package xiaorp2040 is the board support package for the Seeed Studio XIAO RP2040.
package xiaorp2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "seeeduino-xiao-rp2040"
	Version = "0.4.0"
)

// GPIO numbers by silkscreen label.
const (
	D0  = 26
	D1  = 27
	D2  = 28
	D3  = 29
	D4  = 6
	D5  = 7
	D6  = 0
	D7  = 1
	D8  = 2
	D9  = 4
	D10 = 3

	A0   = D0
	A1   = D1
	A2   = D2
	A3   = D3
	SDA  = D4
	SCL  = D5
	TX   = D6
	RX   = D7
	SCK  = D8
	MISO = D9
	MOSI = D10

	NeoPixelPower = 11
	NeoPixel      = 12
	LEDGreen      = 16
	LEDRed        = 17
	LED           = 25
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("D0", D0, types.FuncGPIO),
		boards.Alias("D1", D1, types.FuncGPIO),
		boards.Alias("D2", D2, types.FuncGPIO),
		boards.Alias("D3", D3, types.FuncGPIO),
		boards.Alias("D4", D4, types.FuncGPIO),
		boards.Alias("D5", D5, types.FuncGPIO),
		boards.Alias("D6", D6, types.FuncGPIO),
		boards.Alias("D7", D7, types.FuncGPIO),
		boards.Alias("D8", D8, types.FuncGPIO),
		boards.Alias("D9", D9, types.FuncGPIO),
		boards.Alias("D10", D10, types.FuncGPIO),
		boards.Alias("A0", A0, types.FuncADC),
		boards.Alias("A1", A1, types.FuncADC),
		boards.Alias("A2", A2, types.FuncADC),
		boards.Alias("A3", A3, types.FuncADC),
		boards.Alias("SDA", SDA, types.FuncI2C),
		boards.Alias("SCL", SCL, types.FuncI2C),
		boards.Alias("TX", TX, types.FuncUART),
		boards.Alias("RX", RX, types.FuncUART),
		boards.Alias("SCK", SCK, types.FuncSPI),
		boards.Alias("MISO", MISO, types.FuncSPI),
		boards.Alias("MOSI", MOSI, types.FuncSPI),
		boards.Alias("NEOPIXEL_POWER", NeoPixelPower, types.FuncPower),
		boards.Alias("NEOPIXEL", NeoPixel, types.FuncWS2812, types.FuncPIO),
		boards.AliasNote("LED_GREEN", LEDGreen, "active low", types.FuncLED),
		boards.AliasNote("LED_RED", LEDRed, "active low", types.FuncLED),
		boards.AliasNote("LED", LED, "blue user LED, active low", types.FuncLED),
	}
}

func Manifest() types.Manifest {
	return boards.Standard(boards.Spec{
		Name:        Name,
		Version:     Version,
		Description: "Board support package for the Seeed Studio XIAO RP2040",
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

// Package qtpyrp2040 is the board support package for the Adafruit QT Py RP2040.
package qtpyrp2040

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "adafruit-qt-py-rp2040"
	Version = "0.6.0"
)

// GPIO numbers by silkscreen label. A0..A3 run in reverse GPIO order.
const (
	MOSI          = 3
	MISO          = 4
	RX            = 5
	SCK           = 6
	NeoPixelPower = 11
	NeoPixel      = 12
	TX            = 20
	Button        = 21
	SDA1          = 22
	SCL1          = 23
	SDA           = 24
	SCL           = 25
	A3            = 26
	A2            = 27
	A1            = 28
	A0            = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("MOSI", MOSI, types.FuncGPIO, types.FuncSPI),
		boards.Alias("MISO", MISO, types.FuncGPIO, types.FuncSPI),
		boards.Alias("RX", RX, types.FuncGPIO, types.FuncUART),
		boards.Alias("SCK", SCK, types.FuncGPIO, types.FuncSPI),
		boards.Alias("NEOPIXEL_POWER", NeoPixelPower, types.FuncPower),
		boards.Alias("NEOPIXEL", NeoPixel, types.FuncWS2812, types.FuncPIO),
		boards.Alias("TX", TX, types.FuncGPIO, types.FuncUART),
		boards.AliasNote("BUTTON", Button, "BOOT button, active low", types.FuncButton),
		boards.AliasNote("SDA1", SDA1, "STEMMA QT", types.FuncI2C),
		boards.AliasNote("SCL1", SCL1, "STEMMA QT", types.FuncI2C),
		boards.Alias("SDA", SDA, types.FuncGPIO, types.FuncI2C),
		boards.Alias("SCL", SCL, types.FuncGPIO, types.FuncI2C),
		boards.Alias("A3", A3, types.FuncGPIO, types.FuncADC),
		boards.Alias("A2", A2, types.FuncGPIO, types.FuncADC),
		boards.Alias("A1", A1, types.FuncGPIO, types.FuncADC),
		boards.Alias("A0", A0, types.FuncGPIO, types.FuncADC),
	}
}

func Manifest() types.Manifest {
	return boards.Standard(boards.Spec{
		Name:        Name,
		Version:     Version,
		Description: "Board support package for the Adafruit QT Py RP2040",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c0", SDA, SCL, 400_000),
			boards.I2CBus("i2c1", SDA1, SCL1, 400_000),
			boards.SPIBus("spi0", SCK, MOSI, MISO, 0),
			boards.UARTBus("uart1", TX, RX, 115_200),
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

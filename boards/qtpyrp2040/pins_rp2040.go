//go:build rp2040

package qtpyrp2040

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the Adafruit QT Py RP2040.
type Pins struct {
	MOSI          machine.Pin
	MISO          machine.Pin
	RX            machine.Pin
	SCK           machine.Pin
	NeoPixelPower machine.Pin
	NeoPixel      machine.Pin
	TX            machine.Pin
	Button        machine.Pin
	SDA1          machine.Pin
	SCL1          machine.Pin
	SDA           machine.Pin
	SCL           machine.Pin
	A3            machine.Pin
	A2            machine.Pin
	A1            machine.Pin
	A0            machine.Pin
}

func NewPins() Pins {
	return Pins{
		MOSI:          machine.Pin(MOSI),
		MISO:          machine.Pin(MISO),
		RX:            machine.Pin(RX),
		SCK:           machine.Pin(SCK),
		NeoPixelPower: machine.Pin(NeoPixelPower),
		NeoPixel:      machine.Pin(NeoPixel),
		TX:            machine.Pin(TX),
		Button:        machine.Pin(Button),
		SDA1:          machine.Pin(SDA1),
		SCL1:          machine.Pin(SCL1),
		SDA:           machine.Pin(SDA),
		SCL:           machine.Pin(SCL),
		A3:            machine.Pin(A3),
		A2:            machine.Pin(A2),
		A1:            machine.Pin(A1),
		A0:            machine.Pin(A0),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C0 configures the castellated SDA/SCL pads.
func I2C0() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c0")
}

// I2C1 configures the STEMMA QT connector.
func I2C1() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c1")
}

// SPI0 configures SCK, MOSI and MISO.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// UART1 configures TX GPIO20 / RX GPIO5.
func UART1() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart1")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

//go:build rp2040

package tiny2040

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the Pimoroni Tiny 2040.
type Pins struct {
	GP0 machine.Pin
	GP1 machine.Pin
	GP2 machine.Pin
	GP3 machine.Pin
	GP4 machine.Pin
	GP5 machine.Pin
	GP6 machine.Pin
	GP7 machine.Pin

	// RGB LED, active low.
	LEDRed   machine.Pin
	LEDGreen machine.Pin
	LEDBlue  machine.Pin
	Boot     machine.Pin

	A0 machine.Pin
	A1 machine.Pin
	A2 machine.Pin
	A3 machine.Pin
}

func NewPins() Pins {
	return Pins{
		GP0: machine.Pin(GP0),
		GP1: machine.Pin(GP1),
		GP2: machine.Pin(GP2),
		GP3: machine.Pin(GP3),
		GP4: machine.Pin(GP4),
		GP5: machine.Pin(GP5),
		GP6: machine.Pin(GP6),
		GP7: machine.Pin(GP7),

		LEDRed:   machine.Pin(LEDRed),
		LEDGreen: machine.Pin(LEDGreen),
		LEDBlue:  machine.Pin(LEDBlue),
		Boot:     machine.Pin(Boot),

		A0: machine.Pin(A0),
		A1: machine.Pin(A1),
		A2: machine.Pin(A2),
		A3: machine.Pin(A3),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C0 configures SDA GP4 / SCL GP5.
func I2C0() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c0")
}

// SPI0 configures SCK GP6, SDO GP7; GP4 belongs to I2C0, so there is no SDI.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// UART0 configures TX GP0 / RX GP1.
func UART0() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart0")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

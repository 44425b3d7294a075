//go:build rp2040

package xiaorp2040

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the Seeed XIAO RP2040.
type Pins struct {
	D0  machine.Pin
	D1  machine.Pin
	D2  machine.Pin
	D3  machine.Pin
	D4  machine.Pin
	D5  machine.Pin
	D6  machine.Pin
	D7  machine.Pin
	D8  machine.Pin
	D9  machine.Pin
	D10 machine.Pin

	A0   machine.Pin
	A1   machine.Pin
	A2   machine.Pin
	A3   machine.Pin
	SDA  machine.Pin
	SCL  machine.Pin
	TX   machine.Pin
	RX   machine.Pin
	SCK  machine.Pin
	MISO machine.Pin
	MOSI machine.Pin

	NeoPixelPower machine.Pin
	NeoPixel      machine.Pin
	LEDGreen      machine.Pin
	LEDRed        machine.Pin
	LED           machine.Pin
}

func NewPins() Pins {
	return Pins{
		D0:  machine.Pin(D0),
		D1:  machine.Pin(D1),
		D2:  machine.Pin(D2),
		D3:  machine.Pin(D3),
		D4:  machine.Pin(D4),
		D5:  machine.Pin(D5),
		D6:  machine.Pin(D6),
		D7:  machine.Pin(D7),
		D8:  machine.Pin(D8),
		D9:  machine.Pin(D9),
		D10: machine.Pin(D10),

		A0:   machine.Pin(A0),
		A1:   machine.Pin(A1),
		A2:   machine.Pin(A2),
		A3:   machine.Pin(A3),
		SDA:  machine.Pin(SDA),
		SCL:  machine.Pin(SCL),
		TX:   machine.Pin(TX),
		RX:   machine.Pin(RX),
		SCK:  machine.Pin(SCK),
		MISO: machine.Pin(MISO),
		MOSI: machine.Pin(MOSI),

		NeoPixelPower: machine.Pin(NeoPixelPower),
		NeoPixel:      machine.Pin(NeoPixel),
		LEDGreen:      machine.Pin(LEDGreen),
		LEDRed:        machine.Pin(LEDRed),
		LED:           machine.Pin(LED),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C1 configures SDA D4 / SCL D5.
func I2C1() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c1")
}

// SPI0 configures SCK D8, MOSI D10, MISO D9.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// UART0 configures TX D6 / RX D7.
func UART0() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart0")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

//go:build rp2040

package itsybitsyrp2040

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the Adafruit ItsyBitsy RP2040.
type Pins struct {
	TX            machine.Pin
	RX            machine.Pin
	SDA           machine.Pin
	SCL           machine.Pin
	D4            machine.Pin
	D3            machine.Pin
	D7            machine.Pin
	D9            machine.Pin
	D10           machine.Pin
	D11           machine.Pin
	D12           machine.Pin
	D13           machine.Pin
	LED           machine.Pin
	D2            machine.Pin
	Button        machine.Pin
	D5            machine.Pin
	NeoPixelPower machine.Pin
	NeoPixel      machine.Pin
	SCK           machine.Pin
	MOSI          machine.Pin
	MISO          machine.Pin
	D24           machine.Pin
	D25           machine.Pin
	A0            machine.Pin
	A1            machine.Pin
	A2            machine.Pin
	A3            machine.Pin
}

func NewPins() Pins {
	return Pins{
		TX:            machine.Pin(TX),
		RX:            machine.Pin(RX),
		SDA:           machine.Pin(SDA),
		SCL:           machine.Pin(SCL),
		D4:            machine.Pin(D4),
		D3:            machine.Pin(D3),
		D7:            machine.Pin(D7),
		D9:            machine.Pin(D9),
		D10:           machine.Pin(D10),
		D11:           machine.Pin(D11),
		D12:           machine.Pin(D12),
		D13:           machine.Pin(D13),
		LED:           machine.Pin(LED),
		D2:            machine.Pin(D2),
		Button:        machine.Pin(Button),
		D5:            machine.Pin(D5),
		NeoPixelPower: machine.Pin(NeoPixelPower),
		NeoPixel:      machine.Pin(NeoPixel),
		SCK:           machine.Pin(SCK),
		MOSI:          machine.Pin(MOSI),
		MISO:          machine.Pin(MISO),
		D24:           machine.Pin(D24),
		D25:           machine.Pin(D25),
		A0:            machine.Pin(A0),
		A1:            machine.Pin(A1),
		A2:            machine.Pin(A2),
		A3:            machine.Pin(A3),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C1 configures SDA/SCL at 400 kHz.
func I2C1() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c1")
}

// SPI0 configures SCK, MOSI and MISO.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// UART0 configures TX/RX at 115200 baud.
func UART0() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart0")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

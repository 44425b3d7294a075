//go:build rp2040

package promicrorp2040

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the SparkFun Pro Micro RP2040.
type Pins struct {
	TX  machine.Pin
	RX  machine.Pin
	GP2 machine.Pin
	GP3 machine.Pin
	GP4 machine.Pin
	GP5 machine.Pin
	GP6 machine.Pin
	GP7 machine.Pin
	GP8 machine.Pin
	GP9 machine.Pin

	SDA    machine.Pin
	SCL    machine.Pin
	CIPO   machine.Pin
	CS     machine.Pin
	SCK    machine.Pin
	COPI   machine.Pin
	WS2812 machine.Pin

	A0 machine.Pin
	A1 machine.Pin
	A2 machine.Pin
	A3 machine.Pin
}

func NewPins() Pins {
	return Pins{
		TX:  machine.Pin(TX),
		RX:  machine.Pin(RX),
		GP2: machine.Pin(GP2),
		GP3: machine.Pin(GP3),
		GP4: machine.Pin(GP4),
		GP5: machine.Pin(GP5),
		GP6: machine.Pin(GP6),
		GP7: machine.Pin(GP7),
		GP8: machine.Pin(GP8),
		GP9: machine.Pin(GP9),

		SDA:    machine.Pin(SDA),
		SCL:    machine.Pin(SCL),
		CIPO:   machine.Pin(CIPO),
		CS:     machine.Pin(CS),
		SCK:    machine.Pin(SCK),
		COPI:   machine.Pin(COPI),
		WS2812: machine.Pin(WS2812),

		A0: machine.Pin(A0),
		A1: machine.Pin(A1),
		A2: machine.Pin(A2),
		A3: machine.Pin(A3),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C0 configures the Qwiic connector.
func I2C0() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c0")
}

// SPI0 configures SCK, COPI, CIPO with CS held high.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// UART0 configures TX/RX at 115200 baud.
func UART0() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart0")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

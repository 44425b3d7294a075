//go:build rp2040

package rppico

import (
	"io"
	"machine"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/platform"
)

// Pins names every labelled GPIO of the Raspberry Pi Pico.
type Pins struct {
	GP0  machine.Pin
	GP1  machine.Pin
	GP2  machine.Pin
	GP3  machine.Pin
	GP4  machine.Pin
	GP5  machine.Pin
	GP6  machine.Pin
	GP7  machine.Pin
	GP8  machine.Pin
	GP9  machine.Pin
	GP10 machine.Pin
	GP11 machine.Pin
	GP12 machine.Pin
	GP13 machine.Pin
	GP14 machine.Pin
	GP15 machine.Pin
	GP16 machine.Pin
	GP17 machine.Pin
	GP18 machine.Pin
	GP19 machine.Pin
	GP20 machine.Pin
	GP21 machine.Pin
	GP22 machine.Pin

	// Board-internal signals.
	BPowerSave machine.Pin
	VBUSDetect machine.Pin
	LED        machine.Pin

	GP26           machine.Pin
	GP27           machine.Pin
	GP28           machine.Pin
	VoltageMonitor machine.Pin
}

func NewPins() Pins {
	return Pins{
		GP0:  machine.Pin(GP0),
		GP1:  machine.Pin(GP1),
		GP2:  machine.Pin(GP2),
		GP3:  machine.Pin(GP3),
		GP4:  machine.Pin(GP4),
		GP5:  machine.Pin(GP5),
		GP6:  machine.Pin(GP6),
		GP7:  machine.Pin(GP7),
		GP8:  machine.Pin(GP8),
		GP9:  machine.Pin(GP9),
		GP10: machine.Pin(GP10),
		GP11: machine.Pin(GP11),
		GP12: machine.Pin(GP12),
		GP13: machine.Pin(GP13),
		GP14: machine.Pin(GP14),
		GP15: machine.Pin(GP15),
		GP16: machine.Pin(GP16),
		GP17: machine.Pin(GP17),
		GP18: machine.Pin(GP18),
		GP19: machine.Pin(GP19),
		GP20: machine.Pin(GP20),
		GP21: machine.Pin(GP21),
		GP22: machine.Pin(GP22),

		BPowerSave: machine.Pin(BPowerSave),
		VBUSDetect: machine.Pin(VBUSDetect),
		LED:        machine.Pin(LED),

		GP26:           machine.Pin(GP26),
		GP27:           machine.Pin(GP27),
		GP28:           machine.Pin(GP28),
		VoltageMonitor: machine.Pin(VoltageMonitor),
	}
}

func board() boards.Board { return boards.Board{Manifest: Manifest()} }

// I2C0 configures SDA GP4 / SCL GP5 at 400 kHz.
func I2C0() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c0")
}

// I2C1 configures SDA GP2 / SCL GP3 at 400 kHz.
func I2C1() (drivers.I2C, error) {
	return board().OpenI2C(platform.Default().I2C, "i2c1")
}

// SPI0 configures SCK GP18, SDO GP19, SDI GP16.
func SPI0() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi0")
}

// SPI1 configures SCK GP10, SDO GP11, SDI GP12.
func SPI1() (drivers.SPI, error) {
	return board().OpenSPI(platform.Default().SPI, "spi1")
}

// UART0 configures TX GP0 / RX GP1 at 115200 baud.
func UART0() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart0")
}

// UART1 configures TX GP8 / RX GP9 at 115200 baud.
func UART1() (io.ReadWriter, error) {
	return board().OpenUART(platform.Default().UART, "uart1")
}

// Bring configures every default bus.
func Bring() (*platform.Buses, error) { return board().Bring(platform.Default()) }

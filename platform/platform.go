// Package platform is the seam between board support packages and the chip
// HAL: pin, I²C, SPI and UART factories plus default-bus bring-up.
package platform

import (
	"fmt"
	"io"
	"sort"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/pinmux"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/mathx"
)

// Pull selects an input bias.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Pin is a configured bank-0 GPIO.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

type PinFactory interface {
	ByNumber(n int) (Pin, bool)
}

// I2CFactory configures an I²C controller from a board default.
type I2CFactory interface {
	Open(b types.BusDefault) (drivers.I2C, error)
}

type SPIFactory interface {
	Open(b types.BusDefault) (drivers.SPI, error)
}

type UARTFactory interface {
	Open(b types.BusDefault) (io.ReadWriter, error)
}

// Factories bundles the HAL collaborators. Nil members disable that bus kind.
type Factories struct {
	Pins PinFactory
	I2C  I2CFactory
	SPI  SPIFactory
	UART UARTFactory
}

// Controller limits. Hz of zero in a BusDefault selects the default.
const (
	I2CMinHz     = 10_000
	I2CMaxHz     = 1_000_000
	I2CDefaultHz = 100_000

	SPIMinHz     = 1_000
	SPIMaxHz     = 62_500_000 // clk_peri / 2 at 125 MHz
	SPIDefaultHz = 4_000_000

	UARTMinBaud     = 300
	UARTMaxBaud     = 921_600
	UARTDefaultBaud = 115_200
)

// Frequency returns the effective clock or baud rate for b.
func Frequency(b types.BusDefault) uint32 {
	switch b.Kind {
	case types.BusI2C:
		if b.Hz == 0 {
			return I2CDefaultHz
		}
		return mathx.Clamp(b.Hz, I2CMinHz, I2CMaxHz)
	case types.BusSPI:
		if b.Hz == 0 {
			return SPIDefaultHz
		}
		return mathx.Clamp(b.Hz, SPIMinHz, SPIMaxHz)
	case types.BusUART:
		if b.Hz == 0 {
			return UARTDefaultBaud
		}
		return mathx.Clamp(b.Hz, UARTMinBaud, UARTMaxBaud)
	}
	return b.Hz
}

// Buses holds the controllers brought up for one board, keyed by bus ID.
type Buses struct {
	I2C  map[string]drivers.I2C
	SPI  map[string]drivers.SPI
	UART map[string]io.ReadWriter
}

// IDs lists every bus that was brought up, sorted.
func (b *Buses) IDs() []string {
	var out []string
	for id := range b.I2C {
		out = append(out, id)
	}
	for id := range b.SPI {
		out = append(out, id)
	}
	for id := range b.UART {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Bring configures every default bus of m. A bus whose pins cannot carry
// the controller's signals, or that shares a GPIO with another bus, is
// rejected before any hardware is touched.
func Bring(m types.Manifest, f Factories) (*Buses, error) {
	const op = "platform.Bring"
	for _, b := range m.Buses {
		if err := pinmux.Check(b); err != nil {
			return nil, fmt.Errorf("%s: %w", m.Identity.Name, err)
		}
	}
	if _, err := pinmux.Claim(m.Buses); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Identity.Name, err)
	}

	out := &Buses{
		I2C:  map[string]drivers.I2C{},
		SPI:  map[string]drivers.SPI{},
		UART: map[string]io.ReadWriter{},
	}
	for _, b := range m.Buses {
		var err error
		switch b.Kind {
		case types.BusI2C:
			if f.I2C == nil {
				continue
			}
			var bus drivers.I2C
			if bus, err = f.I2C.Open(b); err == nil {
				out.I2C[b.ID] = bus
			}
		case types.BusSPI:
			if f.SPI == nil {
				continue
			}
			var bus drivers.SPI
			if bus, err = f.SPI.Open(b); err == nil {
				out.SPI[b.ID] = bus
			}
		case types.BusUART:
			if f.UART == nil {
				continue
			}
			var port io.ReadWriter
			if port, err = f.UART.Open(b); err == nil {
				out.UART[b.ID] = port
			}
		default:
			err = errcode.New(errcode.UnknownBus, op, string(b.Kind))
		}
		if err != nil {
			return nil, &errcode.E{C: errcode.Of(err), Op: op, Msg: m.Identity.Name + " " + b.ID, Err: err}
		}
	}
	return out, nil
}

// Output configures GPIO n as an output at level initial.
func Output(f PinFactory, n int, initial bool) (Pin, error) {
	p, ok := f.ByNumber(n)
	if !ok {
		return nil, errcode.New(errcode.InvalidGPIO, "platform.Output", fmt.Sprintf("gpio %d", n))
	}
	return p, p.ConfigureOutput(initial)
}

// Input configures GPIO n as an input with the given bias.
func Input(f PinFactory, n int, pull Pull) (Pin, error) {
	p, ok := f.ByNumber(n)
	if !ok {
		return nil, errcode.New(errcode.InvalidGPIO, "platform.Input", fmt.Sprintf("gpio %d", n))
	}
	return p, p.ConfigureInput(pull)
}

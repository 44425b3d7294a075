//go:build rp2040

package platform

import (
	"context"
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/mathx"
)

// Default returns factories backed by machine and uartx.
func Default() Factories {
	return Factories{
		Pins: rp2PinFactory{},
		I2C:  rp2I2CFactory{},
		SPI:  rp2SPIFactory{},
		UART: rp2UARTFactory{},
	}
}

// ---- GPIO ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (Pin, bool) {
	if !mathx.Between(n, types.GPIOMin, types.GPIOMax) {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	mode := machine.PinInput
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *rp2Pin) Number() int { return r.n }

// ---- I²C ----

type rp2I2CFactory struct{}

func (rp2I2CFactory) Open(b types.BusDefault) (drivers.I2C, error) {
	var hw *machine.I2C
	switch b.ID {
	case "i2c0":
		hw = machine.I2C0
	case "i2c1":
		hw = machine.I2C1
	default:
		return nil, errcode.New(errcode.UnknownBus, "platform.I2C", b.ID)
	}
	sda := machine.Pin(b.Pins[types.SigSDA])
	scl := machine.Pin(b.Pins[types.SigSCL])
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	err := hw.Configure(machine.I2CConfig{
		SDA:       sda,
		SCL:       scl,
		Frequency: Frequency(b),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.I2C", err)
	}
	return hw, nil
}

// ---- SPI ----

type rp2SPIFactory struct{}

func (rp2SPIFactory) Open(b types.BusDefault) (drivers.SPI, error) {
	var hw *machine.SPI
	switch b.ID {
	case "spi0":
		hw = machine.SPI0
	case "spi1":
		hw = machine.SPI1
	default:
		return nil, errcode.New(errcode.UnknownBus, "platform.SPI", b.ID)
	}
	cfg := machine.SPIConfig{
		Frequency: Frequency(b),
		SCK:       machine.Pin(b.Pins[types.SigSCK]),
		Mode:      0,
	}
	// Unwired data lines stay off the mux.
	cfg.SDO, cfg.SDI = machine.NoPin, machine.NoPin
	if n, ok := b.Pins[types.SigSDO]; ok {
		cfg.SDO = machine.Pin(n)
	}
	if n, ok := b.Pins[types.SigSDI]; ok {
		cfg.SDI = machine.Pin(n)
	}
	if err := hw.Configure(cfg); err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.SPI", err)
	}
	if n, ok := b.Pins[types.SigCS]; ok {
		cs := machine.Pin(n)
		cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
		cs.High()
	}
	return hw, nil
}

// ---- UART ----

type rp2UARTFactory struct{}

func (rp2UARTFactory) Open(b types.BusDefault) (io.ReadWriter, error) {
	var hw *uartx.UART
	switch b.ID {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, errcode.New(errcode.UnknownBus, "platform.UART", b.ID)
	}
	rx := machine.NoPin
	if n, ok := b.Pins[types.SigRX]; ok {
		rx = machine.Pin(n)
	}
	err := hw.Configure(uartx.UARTConfig{
		BaudRate: Frequency(b),
		TX:       machine.Pin(b.Pins[types.SigTX]),
		RX:       rx,
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "platform.UART", err)
	}
	return &rp2Port{u: hw}, nil
}

// rp2Port adapts uartx to io.ReadWriter; Read blocks until some bytes arrive.
type rp2Port struct{ u *uartx.UART }

func (p *rp2Port) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2Port) Read(b []byte) (int, error) {
	return p.u.RecvSomeContext(context.Background(), b)
}

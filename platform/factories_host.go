//go:build !rp2040

package platform

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"tinygo.org/x/drivers"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/mathx"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin records configuration and level changes for host-side tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    Pull
	writes  int
}

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	// An idle pulled-up input reads high.
	p.level = pull == PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.writes++
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// IsOutput reports the configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// PullMode reports the bias of the last ConfigureInput.
func (p *FakePin) PullMode() Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

// Writes counts Set/Toggle calls since creation.
func (p *FakePin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (Pin, bool) {
	if !mathx.Between(n, types.GPIOMin, types.GPIOMax) {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements drivers.I2C. Addresses listed in Present acknowledge;
// everything else fails like a NACK.
type HostI2C struct {
	mu      sync.Mutex
	Bus     types.BusDefault
	Hz      uint32
	Present map[uint16][]byte // addr -> bytes returned on read
	LastTx  struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	data, ok := h.Present[addr]
	if !ok {
		return fmt.Errorf("i2c: no ack from 0x%02x", addr)
	}
	copy(r, data)
	return nil
}

// HostI2CFactory hands out one HostI2C per bus ID.
type HostI2CFactory struct {
	mu      sync.Mutex
	Present map[uint16][]byte // seeded into every bus opened
	buses   map[string]*HostI2C
}

func (f *HostI2CFactory) Open(b types.BusDefault) (drivers.I2C, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.buses == nil {
		f.buses = map[string]*HostI2C{}
	}
	h := &HostI2C{Bus: b, Hz: Frequency(b), Present: f.Present}
	f.buses[b.ID] = h
	return h, nil
}

// Get returns the bus opened under id.
func (f *HostI2CFactory) Get(id string) (*HostI2C, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.buses[id]
	return h, ok
}

// ----------------------------- SPI (host) ------------------------------------

// HostSPI implements drivers.SPI, recording written bytes. Reads return
// zeroes.
type HostSPI struct {
	mu      sync.Mutex
	Bus     types.BusDefault
	Hz      uint32
	Written []byte
}

func (s *HostSPI) Tx(w, r []byte) error {
	s.mu.Lock()
	s.Written = append(s.Written, w...)
	s.mu.Unlock()
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (s *HostSPI) Transfer(b byte) (byte, error) {
	s.mu.Lock()
	s.Written = append(s.Written, b)
	s.mu.Unlock()
	return 0, nil
}

type HostSPIFactory struct {
	mu    sync.Mutex
	buses map[string]*HostSPI
}

func (f *HostSPIFactory) Open(b types.BusDefault) (drivers.SPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.buses == nil {
		f.buses = map[string]*HostSPI{}
	}
	s := &HostSPI{Bus: b, Hz: Frequency(b)}
	f.buses[b.ID] = s
	return s, nil
}

func (f *HostSPIFactory) Get(id string) (*HostSPI, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.buses[id]
	return s, ok
}

// ----------------------------- UART (host) -----------------------------------

// HostUART is a loopback port: bytes written become readable.
type HostUART struct {
	mu   sync.Mutex
	Bus  types.BusDefault
	Baud uint32
	buf  bytes.Buffer
}

func (u *HostUART) Write(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.buf.Write(p)
}

func (u *HostUART) Read(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.buf.Len() == 0 {
		return 0, io.EOF
	}
	return u.buf.Read(p)
}

type HostUARTFactory struct {
	mu    sync.Mutex
	ports map[string]*HostUART
}

func (f *HostUARTFactory) Open(b types.BusDefault) (io.ReadWriter, error) {
	if _, ok := b.Pins[types.SigTX]; !ok {
		return nil, errcode.New(errcode.InvalidPinMux, "platform.HostUARTFactory", b.ID+" has no tx pin")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ports == nil {
		f.ports = map[string]*HostUART{}
	}
	u := &HostUART{Bus: b, Baud: Frequency(b)}
	f.ports[b.ID] = u
	return u, nil
}

func (f *HostUARTFactory) Get(id string) (*HostUART, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.ports[id]
	return u, ok
}

// Default returns inert host factories.
func Default() Factories {
	return Factories{
		Pins: &HostPinFactory{},
		I2C:  &HostI2CFactory{},
		SPI:  &HostSPIFactory{},
		UART: &HostUARTFactory{},
	}
}

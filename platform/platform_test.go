//go:build !rp2040

package platform

import (
	"errors"
	"testing"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

func TestFrequencyClamps(t *testing.T) {
	cases := []struct {
		b    types.BusDefault
		want uint32
	}{
		{types.BusDefault{Kind: types.BusI2C}, I2CDefaultHz},
		{types.BusDefault{Kind: types.BusI2C, Hz: 400_000}, 400_000},
		{types.BusDefault{Kind: types.BusI2C, Hz: 5_000_000}, I2CMaxHz},
		{types.BusDefault{Kind: types.BusSPI, Hz: 100_000_000}, SPIMaxHz},
		{types.BusDefault{Kind: types.BusSPI}, SPIDefaultHz},
		{types.BusDefault{Kind: types.BusUART, Hz: 50}, UARTMinBaud},
		{types.BusDefault{Kind: types.BusUART}, UARTDefaultBaud},
	}
	for _, tc := range cases {
		if got := Frequency(tc.b); got != tc.want {
			t.Errorf("Frequency(%s %d) = %d, want %d", tc.b.Kind, tc.b.Hz, got, tc.want)
		}
	}
}

func picoLike() types.Manifest {
	return types.Manifest{
		Identity: types.Identity{Name: "demo", Version: "0.1.0"},
		Buses: []types.BusDefault{
			{ID: "i2c0", Kind: types.BusI2C, Pins: map[string]int{"sda": 4, "scl": 5}, Hz: 400_000},
			{ID: "spi0", Kind: types.BusSPI, Pins: map[string]int{"sck": 18, "sdo": 19, "sdi": 16, "cs": 17}},
			{ID: "uart0", Kind: types.BusUART, Pins: map[string]int{"tx": 0, "rx": 1}},
		},
	}
}

func TestBringOpensEveryBus(t *testing.T) {
	f := Default()
	buses, err := Bring(picoLike(), f)
	if err != nil {
		t.Fatalf("Bring: %v", err)
	}
	if got := buses.IDs(); len(got) != 3 || got[0] != "i2c0" || got[1] != "spi0" || got[2] != "uart0" {
		t.Fatalf("IDs() = %v", got)
	}
	h, ok := f.I2C.(*HostI2CFactory).Get("i2c0")
	if !ok || h.Hz != 400_000 {
		t.Fatalf("i2c0 = %+v", h)
	}
	s, _ := f.SPI.(*HostSPIFactory).Get("spi0")
	if s.Hz != SPIDefaultHz {
		t.Fatalf("spi0 Hz = %d", s.Hz)
	}

	port := buses.UART["uart0"]
	if _, err := port.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	n, _ := port.Read(buf)
	if string(buf[:n]) != "hi" {
		t.Fatalf("loopback read %q", buf[:n])
	}
}

func TestBringRejectsBadMux(t *testing.T) {
	m := picoLike()
	m.Buses[0].Pins["sda"] = 5 // GPIO5 is i2c0 SCL
	_, err := Bring(m, Default())
	if !errors.Is(err, errcode.InvalidPinMux) {
		t.Fatalf("err = %v, want invalid_pinmux", err)
	}
}

func TestBringRejectsSharedGPIO(t *testing.T) {
	m := picoLike()
	m.Buses = append(m.Buses, types.BusDefault{ID: "spi1", Kind: types.BusSPI, Pins: map[string]int{"sck": 10, "sdo": 11, "sdi": 12}})
	m.Buses[0].Pins = map[string]int{"sda": 12, "scl": 13} // i2c0 on GPIO12/13 collides with spi1 sdi
	f := Default()
	_, err := Bring(m, f)
	if !errors.Is(err, errcode.PinInUse) {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if _, opened := f.I2C.(*HostI2CFactory).Get("i2c0"); opened {
		t.Fatalf("i2c0 opened despite the conflict")
	}
}

func TestBringSkipsMissingFactories(t *testing.T) {
	buses, err := Bring(picoLike(), Factories{I2C: &HostI2CFactory{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(buses.SPI) != 0 || len(buses.UART) != 0 || len(buses.I2C) != 1 {
		t.Fatalf("buses = %v", buses.IDs())
	}
}

func TestHostI2CAck(t *testing.T) {
	h := &HostI2C{Present: map[uint16][]byte{0x38: {0x1c}}}
	r := make([]byte, 1)
	if err := h.Tx(0x38, []byte{0x71}, r); err != nil || r[0] != 0x1c {
		t.Fatalf("Tx(0x38) = %v, %x", err, r)
	}
	if err := h.Tx(0x40, nil, r); err == nil {
		t.Fatal("absent device acknowledged")
	}
	if h.LastTx.Addr != 0x40 {
		t.Fatalf("LastTx.Addr = %x", h.LastTx.Addr)
	}
}

func TestPins(t *testing.T) {
	f := &HostPinFactory{}
	led, err := Output(f, 25, false)
	if err != nil {
		t.Fatal(err)
	}
	led.Toggle()
	if !led.Get() {
		t.Fatal("toggle did not raise the pin")
	}
	key, err := Input(f, 15, PullUp)
	if err != nil {
		t.Fatal(err)
	}
	if !key.Get() {
		t.Fatal("pulled-up input should idle high")
	}
	fp, _ := f.Get(15)
	if fp.IsOutput() || fp.PullMode() != PullUp {
		t.Fatalf("pin 15 state: out=%v pull=%d", fp.IsOutput(), fp.PullMode())
	}
	if _, err := Output(f, 30, false); !errors.Is(err, errcode.InvalidGPIO) {
		t.Fatalf("gpio 30 err = %v", err)
	}
}

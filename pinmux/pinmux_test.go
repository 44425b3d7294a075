package pinmux

import (
	"errors"
	"strings"
	"testing"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

func TestI2CTable(t *testing.T) {
	cases := []struct {
		gpio int
		inst int
		sig  string
	}{
		{0, 0, types.SigSDA}, {1, 0, types.SigSCL},
		{2, 1, types.SigSDA}, {3, 1, types.SigSCL},
		{4, 0, types.SigSDA}, {5, 0, types.SigSCL},
		{16, 0, types.SigSDA}, {17, 0, types.SigSCL},
		{24, 0, types.SigSDA}, {25, 0, types.SigSCL},
		{22, 1, types.SigSDA}, {23, 1, types.SigSCL},
	}
	for _, tc := range cases {
		inst, sig, ok := I2C(tc.gpio)
		if !ok || inst != tc.inst || sig != tc.sig {
			t.Errorf("I2C(%d) = %d,%s,%v want %d,%s", tc.gpio, inst, sig, ok, tc.inst, tc.sig)
		}
	}
}

func TestSPIAndUARTTables(t *testing.T) {
	spi := []struct {
		gpio int
		inst int
		sig  string
	}{
		{16, 0, types.SigSDI}, {17, 0, types.SigCS}, {18, 0, types.SigSCK}, {19, 0, types.SigSDO},
		{10, 1, types.SigSCK}, {11, 1, types.SigSDO}, {12, 1, types.SigSDI},
		{6, 0, types.SigSCK}, {3, 0, types.SigSDO}, {4, 0, types.SigSDI},
	}
	for _, tc := range spi {
		inst, sig, _ := SPI(tc.gpio)
		if inst != tc.inst || sig != tc.sig {
			t.Errorf("SPI(%d) = %d,%s want %d,%s", tc.gpio, inst, sig, tc.inst, tc.sig)
		}
	}
	uart := []struct {
		gpio int
		inst int
		sig  string
	}{
		{0, 0, types.SigTX}, {1, 0, types.SigRX},
		{4, 1, types.SigTX}, {5, 1, types.SigRX},
		{8, 1, types.SigTX}, {12, 0, types.SigTX},
		{20, 1, types.SigTX}, {28, 0, types.SigTX},
	}
	for _, tc := range uart {
		inst, sig, _ := UART(tc.gpio)
		if inst != tc.inst || sig != tc.sig {
			t.Errorf("UART(%d) = %d,%s want %d,%s", tc.gpio, inst, sig, tc.inst, tc.sig)
		}
	}
}

func TestPWMAndADC(t *testing.T) {
	if s, ch, _ := PWM(25); s != 4 || ch != 'B' {
		t.Fatalf("PWM(25) = %d,%c", s, ch)
	}
	if s, ch, _ := PWM(16); s != 0 || ch != 'A' {
		t.Fatalf("PWM(16) = %d,%c", s, ch)
	}
	if ch, ok := ADC(29); !ok || ch != 3 {
		t.Fatalf("ADC(29) = %d,%v", ch, ok)
	}
	if _, ok := ADC(25); ok {
		t.Fatal("GPIO25 has no ADC input")
	}
	if _, _, ok := I2C(30); ok {
		t.Fatal("GPIO30 is out of range")
	}
}

func TestParseBusID(t *testing.T) {
	k, n, err := ParseBusID("uart1")
	if err != nil || k != types.BusUART || n != 1 {
		t.Fatalf("ParseBusID(uart1) = %s,%d,%v", k, n, err)
	}
	for _, bad := range []string{"i2c2", "spi", "can0", ""} {
		if _, _, err := ParseBusID(bad); !errors.Is(err, errcode.UnknownBus) {
			t.Errorf("ParseBusID(%q) err = %v", bad, err)
		}
	}
}

func TestCheck(t *testing.T) {
	good := types.BusDefault{ID: "i2c1", Kind: types.BusI2C, Pins: map[string]int{"sda": 2, "scl": 3}}
	if err := Check(good); err != nil {
		t.Fatalf("Check(good): %v", err)
	}
	spi := types.BusDefault{ID: "spi1", Kind: types.BusSPI, Pins: map[string]int{"sck": 10, "sdo": 11, "cs": 9}}
	if err := Check(spi); err != nil {
		t.Fatalf("Check(spi with gpio cs): %v", err)
	}

	bad := []types.BusDefault{
		{ID: "i2c0", Kind: types.BusI2C, Pins: map[string]int{"sda": 2, "scl": 3}},
		{ID: "i2c0", Kind: types.BusSPI, Pins: map[string]int{"sck": 2}},
		{ID: "i2c0", Kind: types.BusI2C, Pins: map[string]int{"sda": 4}},
		{ID: "uart0", Kind: types.BusUART, Pins: map[string]int{"tx": 1}},
	}
	for i, b := range bad {
		if err := Check(b); errcode.Of(err) != errcode.InvalidPinMux {
			t.Errorf("case %d: Check err = %v, want invalid_pin_mux", i, err)
		}
	}
}

func TestClaim(t *testing.T) {
	owners, err := Claim([]types.BusDefault{
		{ID: "i2c0", Kind: types.BusI2C, Pins: map[string]int{"sda": 4, "scl": 5}},
		{ID: "spi0", Kind: types.BusSPI, Pins: map[string]int{"sck": 6, "sdo": 7}},
	})
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if owners[4] != "i2c0 sda" || owners[7] != "spi0 sdo" || len(owners) != 4 {
		t.Fatalf("owners = %v", owners)
	}

	_, err = Claim([]types.BusDefault{
		{ID: "i2c0", Kind: types.BusI2C, Pins: map[string]int{"sda": 4, "scl": 5}},
		{ID: "spi0", Kind: types.BusSPI, Pins: map[string]int{"sck": 6, "sdo": 7, "sdi": 4}},
	})
	if !errors.Is(err, errcode.PinInUse) {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
	if !strings.Contains(err.Error(), "GPIO4 used by i2c0 sda and spi0 sdi") {
		t.Fatalf("err = %v", err)
	}
}

// Package pinmux is the RP2040 bank-0 GPIO function-select table.
//
// It only answers "can GPIO n carry signal s of controller c"; selecting the
// function is the HAL's job.
package pinmux

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/mathx"
)

// Fixed by silicon.
const (
	NumGPIO      = 30
	NumPWMSlices = 8
	firstADCGPIO = 26
)

func valid(n int) bool { return mathx.Between(n, types.GPIOMin, types.GPIOMax) }

// SPI returns the SPI instance and signal (sdi, cs, sck, sdo) on GPIO n (F1).
func SPI(n int) (int, string, bool) {
	if !valid(n) {
		return 0, "", false
	}
	sig := [...]string{types.SigSDI, types.SigCS, types.SigSCK, types.SigSDO}[n%4]
	return (n / 8) % 2, sig, true
}

// UART returns the UART instance and signal (tx, rx, cts, rts) on GPIO n (F2).
func UART(n int) (int, string, bool) {
	if !valid(n) {
		return 0, "", false
	}
	sig := [...]string{types.SigTX, types.SigRX, "cts", "rts"}[n%4]
	return ((n + 4) / 8) % 2, sig, true
}

// I2C returns the I2C instance and signal (sda, scl) on GPIO n (F3).
func I2C(n int) (int, string, bool) {
	if !valid(n) {
		return 0, "", false
	}
	sig := types.SigSDA
	if n%2 == 1 {
		sig = types.SigSCL
	}
	return (n / 2) % 2, sig, true
}

// PWM returns the PWM slice and channel ('A' or 'B') on GPIO n (F4).
func PWM(n int) (int, byte, bool) {
	if !valid(n) {
		return 0, 0, false
	}
	ch := byte('A')
	if n%2 == 1 {
		ch = 'B'
	}
	return (n / 2) % NumPWMSlices, ch, true
}

// ADC returns the ADC input wired to GPIO n (26..29).
func ADC(n int) (int, bool) {
	if n < firstADCGPIO || n > types.GPIOMax {
		return 0, false
	}
	return n - firstADCGPIO, true
}

// ParseBusID splits "i2c1" into its kind and instance.
func ParseBusID(id string) (types.BusKind, int, error) {
	for _, k := range []types.BusKind{types.BusI2C, types.BusSPI, types.BusUART} {
		rest, ok := strings.CutPrefix(id, string(k))
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n > 1 {
			break
		}
		return k, n, nil
	}
	return "", 0, errcode.New(errcode.UnknownBus, "pinmux.ParseBusID", fmt.Sprintf("%q", id))
}

// Carries reports whether GPIO n can carry signal sig of controller busID.
// Chip selects for SPI are driven as plain GPIO, so any pin is accepted.
func Carries(busID, sig string, n int) bool {
	kind, inst, err := ParseBusID(busID)
	if err != nil || !valid(n) {
		return false
	}
	var gotInst int
	var gotSig string
	switch kind {
	case types.BusI2C:
		gotInst, gotSig, _ = I2C(n)
	case types.BusSPI:
		if sig == types.SigCS {
			return true
		}
		gotInst, gotSig, _ = SPI(n)
	case types.BusUART:
		gotInst, gotSig, _ = UART(n)
	}
	return gotInst == inst && gotSig == sig
}

var required = map[types.BusKind][]string{
	types.BusI2C:  {types.SigSDA, types.SigSCL},
	types.BusSPI:  {types.SigSCK},
	types.BusUART: {types.SigTX},
}

// Check validates a default bus: the ID must match its kind, required signals
// must be present and every signal must sit on a GPIO that carries it.
func Check(b types.BusDefault) error {
	const op = "pinmux.Check"
	kind, _, err := ParseBusID(b.ID)
	if err != nil {
		return err
	}
	if kind != b.Kind {
		return errcode.New(errcode.InvalidPinMux, op, fmt.Sprintf("bus %s declared as %s", b.ID, b.Kind))
	}
	for _, sig := range required[kind] {
		if _, ok := b.Pins[sig]; !ok {
			return errcode.New(errcode.InvalidPinMux, op, fmt.Sprintf("bus %s missing %s", b.ID, sig))
		}
	}
	sigs := make([]string, 0, len(b.Pins))
	for sig := range b.Pins {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	for _, sig := range sigs {
		n := b.Pins[sig]
		if !Carries(b.ID, sig, n) {
			return errcode.New(errcode.InvalidPinMux, op, fmt.Sprintf("GPIO%d cannot carry %s %s", n, b.ID, sig))
		}
	}
	return nil
}

// Claim assigns every GPIO used by bs to one bus signal ("i2c0 sda") and
// fails with pin_in_use when a second signal asks for the same GPIO.
func Claim(bs []types.BusDefault) (map[int]string, error) {
	owners := map[int]string{}
	for _, b := range bs {
		sigs := make([]string, 0, len(b.Pins))
		for sig := range b.Pins {
			sigs = append(sigs, sig)
		}
		sort.Strings(sigs)
		for _, sig := range sigs {
			n := b.Pins[sig]
			who := b.ID + " " + sig
			if prev, taken := owners[n]; taken {
				return owners, errcode.New(errcode.PinInUse, "pinmux.Claim", fmt.Sprintf("GPIO%d used by %s and %s", n, prev, who))
			}
			owners[n] = who
		}
	}
	return owners, nil
}

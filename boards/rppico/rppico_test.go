package rppico

import (
	"reflect"
	"testing"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/types"
)

func TestManifestValid(t *testing.T) {
	if err := manifest.Validate(Manifest()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRegistered(t *testing.T) {
	b, err := boards.Lookup(Name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", Name, err)
	}
	if b.Manifest.Identity.Version != Version || b.Manifest.XOSCHz != boards.XOSCHz {
		t.Fatalf("identity = %+v, xosc = %d", b.Manifest.Identity, b.Manifest.XOSCHz)
	}
}

func TestLabels(t *testing.T) {
	b, _ := boards.Lookup(Name)
	cases := []struct {
		label string
		gpio  int
	}{
		{"GP0", 0},
		{"gp22", 22},
		{"LED", 25},
		{"VBUS_DETECT", 24},
		{"B_POWER_SAVE", 23},
		{"VOLTAGE_MONITOR", 29},
	}
	for _, tc := range cases {
		p, err := b.PinByLabel(tc.label)
		if err != nil {
			t.Fatalf("PinByLabel(%q): %v", tc.label, err)
		}
		if p.GPIO != tc.gpio {
			t.Fatalf("%s = GPIO%d, want GPIO%d", tc.label, p.GPIO, tc.gpio)
		}
	}
	if _, err := b.PinByLabel("NOPE"); err == nil {
		t.Fatal("unknown label resolved")
	}
}

func TestDefaultBusesBringUp(t *testing.T) {
	b := boards.Board{Manifest: Manifest()}
	buses, err := b.Bring(platform.Default())
	if err != nil {
		t.Fatalf("Bring: %v", err)
	}
	if got, want := len(buses.IDs()), len(b.Manifest.Buses); got != want {
		t.Fatalf("brought up %d buses, want %d", got, want)
	}
}

func TestADCPins(t *testing.T) {
	b, _ := boards.Lookup(Name)
	var got []string
	for _, p := range b.PinsByFunction(types.FuncADC) {
		got = append(got, p.Label)
	}
	want := []string{"GP26", "GP27", "GP28", "VOLTAGE_MONITOR"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("adc pins = %v, want %v", got, want)
	}
	if b.LED() != LED {
		t.Fatalf("LED() = %d", b.LED())
	}
}

func TestWaveshareWiringIsFreeGPIO(t *testing.T) {
	b, _ := boards.Lookup(Name)
	for _, n := range []int{GP8, GP9, GP10, GP11, GP12, GP13, GP15, GP17, GP2} {
		if len(b.Aliases(n)) != 1 {
			t.Fatalf("GPIO%d aliases = %v", n, b.Aliases(n))
		}
	}
}

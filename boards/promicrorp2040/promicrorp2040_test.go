package promicrorp2040

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
		{"TX", 0},
		{"GP9", 9},
		{"SDA", 16},
		{"SCK", 22},
		{"COPI", 23},
		{"WS2812", 25},
		{"A0", 26},
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

func TestSPIChipSelect(t *testing.T) {
	b, _ := boards.Lookup(Name)
	bus, err := b.Bus("spi0")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{types.SigSCK: SCK, types.SigSDO: COPI, types.SigSDI: CIPO, types.SigCS: CS}
	if !reflect.DeepEqual(bus.Pins, want) {
		t.Fatalf("spi0 = %v", bus.Pins)
	}
	if _, err := b.OpenSPI(platform.Default().SPI, "spi0"); err != nil {
		t.Fatalf("OpenSPI: %v", err)
	}
	if _, err := b.OpenSPI(platform.Default().SPI, "i2c0"); err == nil {
		t.Fatal("OpenSPI accepted an I2C bus")
	}
}

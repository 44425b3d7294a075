package itsybitsyrp2040

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
		{"D2", 12},
		{"D3", 5},
		{"NEOPIXEL", 17},
		{"NEOPIXEL_POWER", 16},
		{"D5", 14},
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

func TestButtonAndLED(t *testing.T) {
	b, _ := boards.Lookup(Name)
	if got := b.PinsByFunction(types.FuncButton); len(got) != 1 || got[0].GPIO != Button {
		t.Fatalf("buttons = %v", got)
	}
	if !reflect.DeepEqual(b.Aliases(11), []string{"D13", "LED"}) {
		t.Fatalf("Aliases(11) = %v", b.Aliases(11))
	}
}

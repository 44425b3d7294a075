package xiaorp2040

import (
	"reflect"
	"testing"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/platform"
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
		{"D0", 26},
		{"D6", 0},
		{"SDA", 6},
		{"MOSI", 3},
		{"LED_RED", 17},
		{"NEOPIXEL", 12},
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

func TestDualLabels(t *testing.T) {
	b, _ := boards.Lookup(Name)
	if got := b.Aliases(26); !reflect.DeepEqual(got, []string{"D0", "A0"}) {
		t.Fatalf("Aliases(26) = %v", got)
	}
	if b.LED() != 25 {
		t.Fatalf("LED() = %d, want the blue user LED", b.LED())
	}
}

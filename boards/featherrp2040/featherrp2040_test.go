package featherrp2040

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
		{"SDA", 2},
		{"D4", 6},
		{"LED", 13},
		{"NEOPIXEL", 16},
		{"MISO", 20},
		{"A3", 29},
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

func TestSharedGPIO(t *testing.T) {
	b, _ := boards.Lookup(Name)
	if got := b.Aliases(13); !reflect.DeepEqual(got, []string{"D13", "LED"}) {
		t.Fatalf("Aliases(13) = %v", got)
	}
	if b.LED() != 13 {
		t.Fatalf("LED() = %d", b.LED())
	}
	if ws := b.PinsByFunction(types.FuncWS2812); len(ws) != 1 || ws[0].GPIO != NeoPixel {
		t.Fatalf("ws2812 = %v", ws)
	}
}

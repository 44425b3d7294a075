package all

import (
	"reflect"
	"strings"
	"testing"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/catalog"
	"github.com/danforbes/rp-hal/resolve"
)

func TestEveryBoardRegistered(t *testing.T) {
	want := []string{
		"adafruit-feather-rp2040",
		"adafruit-itsy-bitsy-rp2040",
		"adafruit-qt-py-rp2040",
		"pimoroni-tiny2040",
		"rp-pico",
		"seeeduino-xiao-rp2040",
		"sparkfun-pro-micro-rp2040",
		"waveshare-rp2040-zero",
	}
	if got := boards.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v", got)
	}
}

func TestWorkspaceResolves(t *testing.T) {
	results, err := resolve.CheckWorkspace(boards.Manifests(), resolve.Options{Catalog: catalog.Default(), Dev: true})
	if err != nil {
		t.Fatalf("CheckWorkspace: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no scenarios ran")
	}
}

func TestFeatureProperties(t *testing.T) {
	opts := func(features ...string) resolve.Options {
		return resolve.Options{NoDefaultFeatures: true, Features: features}
	}
	for _, b := range boards.All() {
		m := b.Manifest
		base, err := resolve.Resolve(m, opts())
		if err != nil {
			t.Fatalf("%s no-default: %v", b.Name(), err)
		}
		if base.Has(boards.Runtime) || base.Has(boards.Boot2) {
			t.Fatalf("%s: no-default graph has runtime or boot2: %v", b.Name(), base.Names())
		}

		rt, err := resolve.Resolve(m, opts("rt"))
		if err != nil {
			t.Fatalf("%s rt: %v", b.Name(), err)
		}
		if got := direct(rt, base); !reflect.DeepEqual(got, []string{boards.Runtime}) {
			t.Fatalf("%s: rt adds direct deps %v", b.Name(), got)
		}
		for _, n := range rt.Added(base) {
			if !strings.HasPrefix(n, boards.Runtime) {
				t.Fatalf("%s: rt pulls %s", b.Name(), n)
			}
		}

		boot2, err := resolve.Resolve(m, opts("boot2"))
		if err != nil {
			t.Fatalf("%s boot2: %v", b.Name(), err)
		}
		if got := boot2.Added(base); !reflect.DeepEqual(got, []string{boards.Boot2}) {
			t.Fatalf("%s: boot2 adds %v", b.Name(), got)
		}

		def, err := resolve.Resolve(m, resolve.Options{})
		if err != nil {
			t.Fatalf("%s default: %v", b.Name(), err)
		}
		for _, f := range []string{"boot2", "rt", "critical-section-impl"} {
			if !def.HasFeature(f) {
				t.Fatalf("%s: default lacks %s", b.Name(), f)
			}
		}
		if hal, _ := def.Package(boards.HAL); hal.Version != boards.HALVersion || !strings.HasPrefix(hal.Source, "path+") {
			t.Fatalf("%s: hal = %+v", b.Name(), hal)
		}
	}
}

func TestDevDependenciesResolve(t *testing.T) {
	for _, b := range boards.All() {
		g, err := resolve.Resolve(b.Manifest, resolve.Options{Dev: true})
		if err != nil {
			t.Fatalf("%s --dev: %v", b.Name(), err)
		}
		if !g.Has("panic-halt") {
			t.Fatalf("%s: dev graph lacks panic-halt", b.Name())
		}
	}
}

func TestTagsCarryBoardName(t *testing.T) {
	for _, b := range boards.All() {
		g, err := resolve.Resolve(b.Manifest, resolve.Options{})
		if err != nil {
			t.Fatal(err)
		}
		tags := g.Tags()
		want := "board_" + strings.ReplaceAll(b.Name(), "-", "_")
		if tags[0] != want {
			t.Fatalf("first tag = %q, want %q", tags[0], want)
		}
	}
}

// direct lists root dependency names present in g but not in base.
func direct(g, base *resolve.Graph) []string {
	have := map[string]bool{}
	for _, id := range base.Deps {
		have[id[:strings.LastIndex(id, "@")]] = true
	}
	var out []string
	for _, id := range g.Deps {
		if n := id[:strings.LastIndex(id, "@")]; !have[n] {
			out = append(out, n)
		}
	}
	return out
}

package resolve

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/danforbes/rp-hal/catalog"
	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/semverx"
)

func picoManifest() types.Manifest {
	return types.Manifest{
		Identity: types.Identity{Name: "rp-pico", Version: "0.7.0"},
		Chip:     "rp2040",
		XOSCHz:   12_000_000,
		Dependencies: []types.Dependency{
			{Name: "cortex-m", Req: "0.7.2"},
			{Name: "rp2040-hal", Req: "0.8.0", Path: "../../rp2040-hal"},
			{Name: "cortex-m-rt", Req: "0.7", Optional: true},
			{Name: "rp2040-boot2", Req: "0.2.1", Optional: true},
			{Name: "usb-device", Req: "0.2.9"},
			{Name: "fugit", Req: "0.3.5"},
			{Name: "panic-halt", Req: "0.2.0", Kind: types.DepDev},
			{Name: "ws2812-pio", Req: "0.6.0", Kind: types.DepDev},
			{Name: "epd-waveshare", Req: "0.5.0", Kind: types.DepDev},
		},
		Features: types.FeatureTable{
			"default":               {"boot2", "rt", "critical-section-impl"},
			"boot2":                 {"rp2040-boot2"},
			"rt":                    {"cortex-m-rt", "rp2040-hal/rt"},
			"critical-section-impl": {"rp2040-hal/critical-section-impl"},
			"rom-func-cache":        {"rp2040-hal/rom-func-cache"},
		},
	}
}

func mustResolve(t *testing.T, m types.Manifest, opts Options) *Graph {
	t.Helper()
	g, err := Resolve(m, opts)
	if err != nil {
		t.Fatalf("Resolve(%s): %v", m.Identity.Name, err)
	}
	return g
}

func directNames(g *Graph) []string {
	var out []string
	for _, id := range g.Deps {
		out = append(out, id[:strings.LastIndex(id, "@")])
	}
	return out
}

func TestResolveDefaults(t *testing.T) {
	g := mustResolve(t, picoManifest(), Options{})

	if !reflect.DeepEqual(g.Features, []string{"boot2", "cortex-m-rt", "critical-section-impl", "default", "rp2040-boot2", "rt"}) {
		t.Fatalf("root features = %v", g.Features)
	}
	hal, ok := g.Package("rp2040-hal")
	if !ok {
		t.Fatal("hal missing")
	}
	if hal.Version != "0.8.0" || hal.Source != "path+../../rp2040-hal" {
		t.Fatalf("hal = %+v", hal)
	}
	if !reflect.DeepEqual(hal.Features, []string{"critical-section-impl", "rt"}) {
		t.Fatalf("hal features = %v", hal.Features)
	}
	rt, _ := g.Package("cortex-m-rt")
	if rt.Version != "0.7.3" {
		t.Fatalf("cortex-m-rt = %s, want newest non-yanked 0.7.3", rt.Version)
	}
	if !reflect.DeepEqual(rt.Features, []string{"device"}) {
		t.Fatalf("cortex-m-rt features = %v (pac/rt forwards device)", rt.Features)
	}
	boot2, _ := g.Package("rp2040-boot2")
	if boot2.Version != "0.2.1" {
		t.Fatalf("boot2 = %s, ^0.2.1 must not pick 0.3.0", boot2.Version)
	}
	cs, _ := g.Package("critical-section")
	if !reflect.DeepEqual(cs.Features, []string{"restore-state-u8"}) {
		t.Fatalf("critical-section features = %v", cs.Features)
	}
	if g.Has("panic-halt") {
		t.Fatal("dev dependencies leak without Dev")
	}
}

func TestNoDefaultFeaturesHasNoEntryOrBootloader(t *testing.T) {
	g := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true})
	if len(g.Features) != 0 {
		t.Fatalf("features = %v", g.Features)
	}
	if g.Has("cortex-m-rt") || g.Has("rp2040-boot2") {
		t.Fatalf("no-default graph pulls runtime or boot2: %v", g.Names())
	}
	if !g.Has("rp2040-hal") {
		t.Fatal("hal is not optional")
	}
}

func TestRtPullsExactlyRuntime(t *testing.T) {
	base := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true})
	rt := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true, Features: []string{"rt"}})

	var added []string
	for _, n := range directNames(rt) {
		if !contains(directNames(base), n) {
			added = append(added, n)
		}
	}
	if !reflect.DeepEqual(added, []string{"cortex-m-rt"}) {
		t.Fatalf("rt adds direct deps %v", added)
	}
	for _, n := range rt.Added(base) {
		if !strings.HasPrefix(n, "cortex-m-rt") {
			t.Fatalf("rt pulled unrelated package %s", n)
		}
	}
}

func TestBoot2PullsExactlyBootloader(t *testing.T) {
	base := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true})
	b := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true, Features: []string{"boot2"}})
	if got := b.Added(base); !reflect.DeepEqual(got, []string{"rp2040-boot2"}) {
		t.Fatalf("boot2 adds %v", got)
	}
}

func TestCriticalSectionImplAddsNoPackages(t *testing.T) {
	base := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true})
	cs := mustResolve(t, picoManifest(), Options{NoDefaultFeatures: true, Features: []string{"critical-section-impl"}})
	if got := cs.Added(base); len(got) != 0 {
		t.Fatalf("critical-section-impl adds %v", got)
	}
	if !contains(cs.FeaturesOf("rp2040-hal"), "critical-section-impl") {
		t.Fatalf("hal features = %v", cs.FeaturesOf("rp2040-hal"))
	}
}

func TestEpochsKeepIncompatibleVersionsApart(t *testing.T) {
	g := mustResolve(t, picoManifest(), Options{})
	var nb []string
	for _, p := range g.Versions("nb") {
		nb = append(nb, p.Version)
	}
	if !reflect.DeepEqual(nb, []string{"0.1.3", "1.0.0"}) {
		t.Fatalf("nb versions = %v", nb)
	}
	if p, _ := g.Package("nb"); p.Version != "0.1.3" {
		t.Fatalf("Package(nb)=%s want lowest", p.Version)
	}
	p, ok := g.PackageAt("nb", "1.0.0")
	if !ok || p.ID() != "nb@1.0.0" {
		t.Fatalf("PackageAt(nb, 1.0.0)=%v, %v", p, ok)
	}
	if _, ok := g.PackageAt("nb", "0.2.0"); ok {
		t.Fatal("PackageAt found an unresolved version")
	}
}

func TestDevDependenciesUnifyWithPathHAL(t *testing.T) {
	g := mustResolve(t, picoManifest(), Options{Dev: true})
	var hals []Package
	for _, p := range g.Packages {
		if p.Name == "rp2040-hal" {
			hals = append(hals, p)
		}
	}
	if len(hals) != 1 || hals[0].Source != "path+../../rp2040-hal" {
		t.Fatalf("ws2812-pio should reuse the path hal, got %+v", hals)
	}
	ws, ok := g.Package("ws2812-pio")
	if !ok || ws.Kind != types.DepDev {
		t.Fatalf("ws2812-pio = %+v", ws)
	}
	if hals[0].Kind != types.DepNormal {
		t.Fatal("hal reached through a normal edge must stay normal")
	}
	epd, _ := g.Package("epd-waveshare")
	if !reflect.DeepEqual(epd.Features, []string{"default", "embedded-graphics-core", "graphics"}) {
		t.Fatalf("epd features = %v", epd.Features)
	}
	if core, _ := g.Package("embedded-graphics-core"); core.Kind != types.DepDev {
		t.Fatalf("dev-only transitive deps should be dev, got %+v", core)
	}
}

func TestTags(t *testing.T) {
	g := mustResolve(t, picoManifest(), Options{})
	want := []string{"board_rp_pico", "bsp_features", "bsp_boot2", "bsp_cortex_m_rt", "bsp_critical_section_impl", "bsp_rp2040_boot2", "bsp_rt"}
	if got := g.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(*types.Manifest)
		opts Options
		code errcode.Code
	}{
		{"unknown requested", nil, Options{Features: []string{"turbo"}}, errcode.UnknownFeature},
		{"unknown forwarded", func(m *types.Manifest) {
			m.Features["rt"] = append(m.Features["rt"], "rp2040-hal/turbo")
		}, Options{}, errcode.UnknownFeature},
		{"bad path", func(m *types.Manifest) { m.Dependencies[1].Path = "../nowhere" }, Options{}, errcode.UnknownDependency},
		{"path too old", func(m *types.Manifest) { m.Dependencies[1].Req = "0.9" }, Options{}, errcode.VersionConflict},
		{"no release", func(m *types.Manifest) { m.Dependencies[4].Req = "0.3" }, Options{}, errcode.NoMatchingVersion},
		{"unknown package", func(m *types.Manifest) {
			m.Dependencies = append(m.Dependencies, types.Dependency{Name: "nope", Req: "1"})
		}, Options{}, errcode.UnknownDependency},
		{"bad requirement", func(m *types.Manifest) { m.Dependencies[0].Req = ">>1" }, Options{}, errcode.InvalidRequirement},
	}
	for _, tc := range cases {
		m := picoManifest()
		if tc.edit != nil {
			tc.edit(&m)
		}
		_, err := Resolve(m, tc.opts)
		if !errors.Is(err, tc.code) {
			t.Errorf("%s: err = %v, want %s", tc.name, err, tc.code)
		}
	}
}

func testCatalog() *catalog.Catalog {
	c := catalog.New()
	for _, v := range []string{"1.0.0", "1.1.0", "1.2.0"} {
		c.Add(catalog.Release{Name: "a", Version: semverx.MustVersion(v)})
	}
	c.Add(catalog.Release{Name: "x", Version: semverx.MustVersion("1.0.0"),
		Dependencies: []types.Dependency{{Name: "a", Req: "^1.0"}}})
	c.Add(catalog.Release{Name: "y", Version: semverx.MustVersion("1.0.0"),
		Dependencies: []types.Dependency{{Name: "a", Req: ">=1.0, <1.2"}}})
	c.Add(catalog.Release{Name: "z", Version: semverx.MustVersion("1.0.0"),
		Dependencies: []types.Dependency{{Name: "a", Req: "=1.0.0"}}})
	return c
}

func TestUnifyBacktracksToCommonRelease(t *testing.T) {
	m := types.Manifest{
		Identity: types.Identity{Name: "demo", Version: "0.1.0"},
		Dependencies: []types.Dependency{
			{Name: "x", Req: "1"},
			{Name: "y", Req: "1"},
		},
	}
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := mustResolve(t, m, Options{Catalog: testCatalog(), Logger: log})
	a, _ := g.Package("a")
	if a.Version != "1.1.0" {
		t.Fatalf("a = %s, want 1.1.0", a.Version)
	}
	if !strings.Contains(logs.String(), "resolve.pin") {
		t.Fatalf("expected a pin log line, got:\n%s", logs.String())
	}
}

func TestUnifyConflict(t *testing.T) {
	m := types.Manifest{
		Identity: types.Identity{Name: "demo", Version: "0.1.0"},
		Dependencies: []types.Dependency{
			{Name: "z", Req: "1"},
			{Name: "a", Req: "^1.1"},
		},
	}
	_, err := Resolve(m, Options{Catalog: testCatalog()})
	if errcode.Of(err) != errcode.VersionConflict {
		t.Fatalf("err = %v, want version_conflict", err)
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

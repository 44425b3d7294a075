package resolve

import (
	"sort"
	"strings"

	"github.com/danforbes/rp-hal/types"
)

// Package is one resolved node of the dependency graph.
type Package struct {
	Name     string        `json:"name" yaml:"name"`
	Version  string        `json:"version" yaml:"version"`
	Source   string        `json:"source" yaml:"source"`
	Features []string      `json:"features,omitempty" yaml:"features,omitempty"`
	Kind     types.DepKind `json:"kind" yaml:"kind"`
	Deps     []string      `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// ID is "name@version".
func (p Package) ID() string { return p.Name + "@" + p.Version }

// Graph is the outcome of resolving one board under one feature selection.
type Graph struct {
	Root     string    `json:"root" yaml:"root"`
	Version  string    `json:"version" yaml:"version"`
	Features []string  `json:"features" yaml:"features"`
	Deps     []string  `json:"deps,omitempty" yaml:"deps,omitempty"`
	Packages []Package `json:"packages" yaml:"packages"`
}

// Has reports whether any version of name is in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.Package(name)
	return ok
}

// Package returns the lowest version of name in the graph. A package split
// across semver epochs (nb 0.1.x and 1.x) has more than one; use PackageAt
// or Versions to reach the others.
func (g *Graph) Package(name string) (Package, bool) {
	for _, p := range g.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// PackageAt returns name at exactly version.
func (g *Graph) PackageAt(name, version string) (Package, bool) {
	for _, p := range g.Packages {
		if p.Name == name && p.Version == version {
			return p, true
		}
	}
	return Package{}, false
}

// Versions returns every resolved version of name, lowest first.
func (g *Graph) Versions(name string) []Package {
	var out []Package
	for _, p := range g.Packages {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

// FeaturesOf returns the enabled features of name ("" means the root). For
// a package present at several epochs it reports the lowest version; use
// PackageAt for the others.
func (g *Graph) FeaturesOf(name string) []string {
	if name == "" || name == g.Root {
		return g.Features
	}
	p, _ := g.Package(name)
	return p.Features
}

// HasFeature reports whether the root has feature f enabled.
func (g *Graph) HasFeature(f string) bool {
	for _, x := range g.Features {
		if x == f {
			return true
		}
	}
	return false
}

// Names returns the distinct package names, sorted.
func (g *Graph) Names() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range g.Packages {
		if !seen[p.Name] {
			seen[p.Name] = true
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Added returns the package names present in g but not in base.
func (g *Graph) Added(base *Graph) []string {
	var out []string
	for _, n := range g.Names() {
		if !base.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// FeatureSetTag is always emitted by Tags; firmware built without it falls
// back to the board's default features.
const FeatureSetTag = "bsp_features"

// Tags returns TinyGo build tags for the root: board_<name>, FeatureSetTag,
// then bsp_<feature> for every enabled feature other than "default". With
// no features enabled the list still carries FeatureSetTag.
func (g *Graph) Tags() []string {
	out := []string{"board_" + tagSafe(g.Root), FeatureSetTag}
	for _, f := range g.Features {
		if f == types.DefaultFeature {
			continue
		}
		out = append(out, "bsp_"+tagSafe(f))
	}
	return out
}

// tagSafe lowercases s and folds anything outside [a-z0-9] to '_'.
func tagSafe(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

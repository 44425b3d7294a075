// Package catalog lists the package releases a resolution may pick from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/semverx"
)

// Release is one published (or local) version of a package.
type Release struct {
	Name         string
	Version      semverx.Version
	Yanked       bool
	Features     types.FeatureTable
	Dependencies []types.Dependency
}

// Catalog indexes releases by package name, newest first.
type Catalog struct {
	pkgs  map[string][]Release
	local map[string]Release
}

func New() *Catalog {
	return &Catalog{pkgs: map[string][]Release{}, local: map[string]Release{}}
}

// Add registers a release, keeping the newest-first order.
func (c *Catalog) Add(r Release) {
	rs := append(c.pkgs[r.Name], r)
	sort.SliceStable(rs, func(i, j int) bool { return semverx.Compare(rs[i].Version, rs[j].Version) > 0 })
	c.pkgs[r.Name] = rs
}

// AddLocal registers the package found at a path override.
func (c *Catalog) AddLocal(path string, r Release) { c.local[path] = r }

// Local returns the package at a path override.
func (c *Catalog) Local(path string) (Release, bool) {
	r, ok := c.local[path]
	return r, ok
}

// Releases returns every release of name, newest first.
func (c *Catalog) Releases(name string) []Release { return c.pkgs[name] }

// Names returns every package name, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.pkgs))
	for n := range c.pkgs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Best returns the newest non-yanked release of name matching every req.
func (c *Catalog) Best(name string, reqs ...semverx.Requirement) (Release, error) {
	rs, ok := c.pkgs[name]
	if !ok {
		return Release{}, errcode.New(errcode.UnknownDependency, "catalog.Best", fmt.Sprintf("no package %q", name))
	}
	for _, r := range rs {
		if r.Yanked {
			continue
		}
		if matchesAll(r.Version, reqs) {
			return r, nil
		}
	}
	return Release{}, errcode.New(errcode.NoMatchingVersion, "catalog.Best", fmt.Sprintf("%s %s", name, joinReqs(reqs)))
}

// Exact returns a specific release, yanked or not.
func (c *Catalog) Exact(name string, v semverx.Version) (Release, bool) {
	for _, r := range c.pkgs[name] {
		if semverx.Compare(r.Version, v) == 0 {
			return r, true
		}
	}
	return Release{}, false
}

func matchesAll(v semverx.Version, reqs []semverx.Requirement) bool {
	for _, r := range reqs {
		if !r.Matches(v) {
			return false
		}
	}
	return true
}

func joinReqs(reqs []semverx.Requirement) string {
	var b bytes.Buffer
	for i, r := range reqs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// ---- YAML ----

type yamlCatalog struct {
	Packages map[string][]yamlRelease `yaml:"packages"`
	Local    []yamlLocal              `yaml:"local,omitempty"`
}

type yamlRelease struct {
	Version      string                   `yaml:"version"`
	Yanked       bool                     `yaml:"yanked,omitempty"`
	Features     map[string][]string      `yaml:"features,omitempty"`
	Dependencies manifest.DependencyTable `yaml:"dependencies,omitempty"`
}

type yamlLocal struct {
	Path    string `yaml:"path"`
	Package string `yaml:"package"`
	Version string `yaml:"version"`
}

// Parse decodes a YAML catalog.
func Parse(b []byte) (*Catalog, error) {
	const op = "catalog.Parse"
	var y yamlCatalog
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, errcode.Wrap(errcode.InvalidManifest, op, err)
	}
	c := New()
	for name, rels := range y.Packages {
		for _, yr := range rels {
			v, err := semverx.ParseVersion(yr.Version)
			if err != nil {
				return nil, &errcode.E{C: errcode.InvalidManifest, Op: op, Msg: name, Err: err}
			}
			r := Release{
				Name:         name,
				Version:      v,
				Yanked:       yr.Yanked,
				Features:     types.FeatureTable{},
				Dependencies: manifest.MapDependencies(yr.Dependencies, types.DepNormal),
			}
			for f, entries := range yr.Features {
				r.Features[f] = entries
			}
			c.Add(r)
		}
	}
	for _, l := range y.Local {
		v, err := semverx.ParseVersion(l.Version)
		if err != nil {
			return nil, &errcode.E{C: errcode.InvalidManifest, Op: op, Msg: l.Path, Err: err}
		}
		r, ok := c.Exact(l.Package, v)
		if !ok {
			return nil, errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("local %s: no %s %s", l.Path, l.Package, l.Version))
		}
		r.Yanked = false
		c.AddLocal(l.Path, r)
	}
	return c, nil
}

// Load reads a YAML catalog from disk.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidManifest, Op: "catalog.Load", Msg: path, Err: err}
	}
	return Parse(b)
}

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in catalog: the HAL, boot-2 image, runtime crate
// and the crates the board examples use.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
}

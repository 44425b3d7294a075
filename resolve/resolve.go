// Package resolve turns a board manifest plus a feature selection into a
// dependency graph, the way the package manager consuming the manifest would.
package resolve

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/danforbes/rp-hal/catalog"
	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/features"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/semverx"
)

// Options selects features and collaborators for one resolution.
type Options struct {
	Features          []string
	NoDefaultFeatures bool
	AllFeatures       bool
	Dev               bool // include dev-dependencies of the root

	Catalog *catalog.Catalog // nil = catalog.Default()
	Logger  *slog.Logger     // nil = discard
}

const maxAttempts = 16

var errRetry = errors.New("retry")

// Source labels.
const (
	SourceRoot     = "root"
	SourceRegistry = "registry"
	sourcePathPfx  = "path+"
)

type node struct {
	key      string // name@epoch
	name     string
	rel      catalog.Release
	source   string
	reqs     []semverx.Requirement
	features map[string]bool
	defaults bool
	normal   bool
	children map[string]*node
	act      *features.Activation
	queued   bool
}

func (n *node) local() bool { return strings.HasPrefix(n.source, sourcePathPfx) }

func (n *node) id() string { return n.name + "@" + n.rel.Version.String() }

// epoch groups semver-compatible releases; one node exists per epoch.
func epoch(v semverx.Version) string {
	switch {
	case v.Major > 0:
		return fmt.Sprintf("%d", v.Major)
	case v.Minor > 0:
		return fmt.Sprintf("0.%d", v.Minor)
	default:
		return fmt.Sprintf("0.0.%d", v.Patch)
	}
}

type resolver struct {
	root types.Manifest
	opts Options
	cat  *catalog.Catalog
	log  *slog.Logger
	pins map[string]semverx.Version
}

// Resolve computes the graph of m under opts.
func Resolve(m types.Manifest, opts Options) (*Graph, error) {
	r := &resolver{
		root: m,
		opts: opts,
		cat:  opts.Catalog,
		log:  opts.Logger,
		pins: map[string]semverx.Version{},
	}
	if r.cat == nil {
		r.cat = catalog.Default()
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		w := &walk{r: r, nodes: map[string]*node{}, byName: map[string][]*node{}}
		g, err := w.run()
		if errors.Is(err, errRetry) {
			r.log.Debug("resolve.retry", "board", m.Identity.Name, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, errcode.New(errcode.VersionConflict, "resolve.Resolve", m.Identity.Name+": versions did not settle")
}

type walk struct {
	r      *resolver
	nodes  map[string]*node
	byName map[string][]*node
	queue  []*node
}

func (w *walk) run() (*Graph, error) {
	m := w.r.root
	requested := w.r.opts.Features
	if w.r.opts.AllFeatures {
		requested = nil
		for f := range m.Features {
			requested = append(requested, f)
		}
	}
	act, err := features.Activate(m.Features, m.Dependencies, requested, !w.r.opts.NoDefaultFeatures)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Identity.Name, err)
	}
	w.r.log.Debug("resolve.features", "board", m.Identity.Name, "features", act.List())

	root := &node{name: m.Identity.Name, source: SourceRoot, normal: true, children: map[string]*node{}, act: act}
	for _, d := range m.Dependencies {
		var feats []string
		switch {
		case d.IsDev():
			if !w.r.opts.Dev {
				continue
			}
			feats = d.Features
		case act.Enabled(d.Name):
			feats = append(append([]string(nil), d.Features...), act.DepFeatures(d.Name)...)
		default:
			continue
		}
		if err := w.edge(root, d, feats, !d.IsDev()); err != nil {
			return nil, err
		}
	}

	for len(w.queue) > 0 {
		n := w.queue[0]
		w.queue = w.queue[1:]
		n.queued = false
		if err := w.expand(n); err != nil {
			return nil, err
		}
	}
	return w.graph(root), nil
}

func (w *walk) expand(n *node) error {
	act, err := features.Activate(n.rel.Features, n.rel.Dependencies, keys(n.features), n.defaults)
	if err != nil {
		return fmt.Errorf("%s: %w", n.id(), err)
	}
	n.act = act
	for _, d := range n.rel.Dependencies {
		if !act.Enabled(d.Name) {
			continue
		}
		feats := append(append([]string(nil), d.Features...), act.DepFeatures(d.Name)...)
		if err := w.edge(n, d, feats, n.normal); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) edge(parent *node, d types.Dependency, feats []string, normal bool) error {
	const op = "resolve.edge"
	req, err := semverx.ParseRequirement(d.Req)
	if err != nil {
		return &errcode.E{C: errcode.InvalidRequirement, Op: op, Msg: parent.name + " -> " + d.Name, Err: err}
	}

	var n *node
	if d.Path != "" {
		n, err = w.place(parent, d, req)
	} else {
		n, err = w.pick(parent, d.PackageName(), req)
	}
	if err != nil {
		return err
	}

	grew := false
	n.reqs = append(n.reqs, req)
	if normal && !n.normal {
		n.normal, grew = true, true
	}
	if !d.NoDefault && !n.defaults {
		n.defaults, grew = true, true
	}
	for _, f := range feats {
		if !n.features[f] {
			n.features[f], grew = true, true
		}
	}
	parent.children[n.key] = n
	if (grew || n.act == nil) && !n.queued {
		n.queued = true
		w.queue = append(w.queue, n)
	}
	return nil
}

// pick selects a registry release for pkg, unifying with existing nodes.
func (w *walk) pick(parent *node, pkg string, req semverx.Requirement) (*node, error) {
	const op = "resolve.pick"
	for _, n := range w.byName[pkg] {
		if req.Matches(n.rel.Version) {
			return n, nil
		}
	}

	rel, err := w.r.cat.Best(pkg, req)
	if err != nil {
		return nil, fmt.Errorf("%s requires %s %s: %w", parent.name, pkg, req, err)
	}
	key := pkg + "@" + epoch(rel.Version)
	if v, ok := w.r.pins[key]; ok && req.Matches(v) {
		if pinned, ok := w.r.cat.Exact(pkg, v); ok {
			rel = pinned
		}
	}

	if existing := w.nodes[key]; existing != nil {
		if existing.local() {
			return nil, errcode.New(errcode.VersionConflict, op, fmt.Sprintf(
				"%s requires %s %s but %s is pinned by %s", parent.name, pkg, req, existing.rel.Version, existing.source))
		}
		all := append(append([]semverx.Requirement(nil), existing.reqs...), req)
		alt, err := w.r.cat.Best(pkg, all...)
		if err != nil || epoch(alt.Version) != epoch(existing.rel.Version) {
			return nil, errcode.New(errcode.VersionConflict, op, fmt.Sprintf(
				"%s: no single release satisfies %s", pkg, joinReqs(all)))
		}
		w.r.pins[key] = alt.Version
		w.r.log.Debug("resolve.pin", "package", pkg, "version", alt.Version.String())
		return nil, errRetry
	}
	return w.add(key, pkg, rel, SourceRegistry, parent), nil
}

// place installs a path override. Every requirement on that epoch must
// accept the local version.
func (w *walk) place(parent *node, d types.Dependency, req semverx.Requirement) (*node, error) {
	const op = "resolve.place"
	pkg := d.PackageName()
	rel, ok := w.r.cat.Local(d.Path)
	if !ok {
		return nil, errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("%s: no package at path %s", parent.name, d.Path))
	}
	if rel.Name != pkg {
		return nil, errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("path %s holds %s, not %s", d.Path, rel.Name, pkg))
	}
	if !req.Matches(rel.Version) {
		return nil, errcode.New(errcode.VersionConflict, op, fmt.Sprintf(
			"%s requires %s %s but path %s is %s", parent.name, pkg, req, d.Path, rel.Version))
	}
	source := sourcePathPfx + d.Path
	key := pkg + "@" + epoch(rel.Version)
	if existing := w.nodes[key]; existing != nil {
		for _, r := range existing.reqs {
			if !r.Matches(rel.Version) {
				return nil, errcode.New(errcode.VersionConflict, op, fmt.Sprintf(
					"%s %s from %s conflicts with requirement %s", pkg, rel.Version, d.Path, r))
			}
		}
		if existing.local() && existing.source != source {
			return nil, errcode.New(errcode.VersionConflict, op, fmt.Sprintf(
				"%s comes from both %s and %s", pkg, existing.source, source))
		}
		if semverx.Compare(existing.rel.Version, rel.Version) != 0 {
			existing.act = nil
		}
		existing.rel, existing.source = rel, source
		return existing, nil
	}
	return w.add(key, pkg, rel, source, parent), nil
}

func (w *walk) add(key, pkg string, rel catalog.Release, source string, parent *node) *node {
	n := &node{
		key:      key,
		name:     pkg,
		rel:      rel,
		source:   source,
		features: map[string]bool{},
		children: map[string]*node{},
	}
	w.nodes[key] = n
	w.byName[pkg] = append(w.byName[pkg], n)
	w.r.log.Debug("resolve.select", "package", pkg, "version", rel.Version.String(), "source", source, "required_by", parent.name)
	return n
}

func (w *walk) graph(root *node) *Graph {
	g := &Graph{
		Root:     root.name,
		Version:  w.r.root.Identity.Version,
		Features: root.act.List(),
		Deps:     childIDs(root),
	}
	for _, n := range w.nodes {
		kind := types.DepNormal
		if !n.normal {
			kind = types.DepDev
		}
		var feats []string
		if n.act != nil {
			feats = n.act.List()
		}
		g.Packages = append(g.Packages, Package{
			Name:     n.name,
			Version:  n.rel.Version.String(),
			Source:   n.source,
			Features: feats,
			Kind:     kind,
			Deps:     childIDs(n),
		})
	}
	sort.Slice(g.Packages, func(i, j int) bool {
		a, b := g.Packages[i], g.Packages[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return semverx.Compare(semverx.MustVersion(a.Version), semverx.MustVersion(b.Version)) < 0
	})
	return g
}

func childIDs(n *node) []string {
	var out []string
	for _, c := range n.children {
		out = append(out, c.id())
	}
	sort.Strings(out)
	return out
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func joinReqs(reqs []semverx.Requirement) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

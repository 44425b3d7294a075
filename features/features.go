// Package features expands a feature table into the set of enabled features,
// optional dependencies and forwarded dependency features.
package features

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

// Activation is the outcome of expanding requested features.
type Activation struct {
	Features map[string]bool

	optional map[string]bool
	deps     map[string]bool
	strong   map[string][]string
	weak     map[string][]string
}

// Enabled reports whether dependency name is part of the build: required
// dependencies always are, optional ones only when switched on.
func (a *Activation) Enabled(name string) bool {
	if opt, ok := a.optional[name]; ok && !opt {
		return true
	}
	return a.deps[name]
}

// DepFeatures lists the features forwarded to dependency name, including weak
// forwards when name is enabled. The result is sorted and unique.
func (a *Activation) DepFeatures(name string) []string {
	set := map[string]struct{}{}
	for _, f := range a.strong[name] {
		set[f] = struct{}{}
	}
	if a.Enabled(name) {
		for _, f := range a.weak[name] {
			set[f] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// List returns the enabled features, sorted.
func (a *Activation) List() []string {
	out := make([]string, 0, len(a.Features))
	for f := range a.Features {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Implicit returns the optional dependencies that double as features: those not
// referred to with a "dep:" entry anywhere in the table.
func Implicit(table types.FeatureTable, deps []types.Dependency) map[string]bool {
	explicit := map[string]bool{}
	for _, entries := range table {
		for _, raw := range entries {
			if e := types.ParseEntry(raw); e.Kind == types.EntryDep {
				explicit[e.Name] = true
			}
		}
	}
	out := map[string]bool{}
	for _, d := range deps {
		if d.Optional && !d.IsDev() && !explicit[d.Name] {
			out[d.Name] = true
		}
	}
	return out
}

type expander struct {
	table    types.FeatureTable
	implicit map[string]bool
	act      *Activation
	onStack  map[string]bool
	stack    []string
}

// Activate expands requested (plus "default" when defaults is set) against
// table. Only normal dependencies take part; features cannot reach dev ones.
func Activate(table types.FeatureTable, deps []types.Dependency, requested []string, defaults bool) (*Activation, error) {
	act := &Activation{
		Features: map[string]bool{},
		optional: map[string]bool{},
		deps:     map[string]bool{},
		strong:   map[string][]string{},
		weak:     map[string][]string{},
	}
	for _, d := range deps {
		if !d.IsDev() {
			act.optional[d.Name] = d.Optional
		}
	}
	x := &expander{
		table:    table,
		implicit: Implicit(table, deps),
		act:      act,
		onStack:  map[string]bool{},
	}

	start := append([]string(nil), requested...)
	sort.Strings(start)
	if defaults {
		if _, ok := table[types.DefaultFeature]; ok {
			start = append([]string{types.DefaultFeature}, start...)
		}
	}
	for _, f := range start {
		if err := x.visit(f); err != nil {
			return nil, err
		}
	}
	return act, nil
}

func (x *expander) visit(name string) error {
	if x.onStack[name] {
		cycle := append(x.cycleFrom(name), name)
		return errcode.New(errcode.FeatureCycle, "features.Activate", strings.Join(cycle, " -> "))
	}
	if x.act.Features[name] {
		return nil
	}
	entries, ok := x.table[name]
	if !ok {
		if x.implicit[name] {
			x.act.Features[name] = true
			x.act.deps[name] = true
			return nil
		}
		if name == types.DefaultFeature {
			return nil
		}
		return errcode.New(errcode.UnknownFeature, "features.Activate", fmt.Sprintf("feature %q is not defined", name))
	}

	x.onStack[name] = true
	x.stack = append(x.stack, name)
	for _, raw := range entries {
		if err := x.apply(types.ParseEntry(raw)); err != nil {
			return err
		}
	}
	x.stack = x.stack[:len(x.stack)-1]
	delete(x.onStack, name)
	x.act.Features[name] = true
	return nil
}

func (x *expander) cycleFrom(name string) []string {
	for i, s := range x.stack {
		if s == name {
			return append([]string(nil), x.stack[i:]...)
		}
	}
	return nil
}

func (x *expander) apply(e types.Entry) error {
	const op = "features.Activate"
	switch e.Kind {
	case types.EntryFeature:
		return x.visit(e.Name)
	case types.EntryDep:
		if !x.act.optional[e.Name] {
			return errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("%q is not an optional dependency", e.String()))
		}
		x.act.deps[e.Name] = true
	case types.EntryDepFeature:
		opt, ok := x.act.optional[e.Name]
		if !ok {
			return errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("%q names no dependency", e.String()))
		}
		if opt {
			x.act.deps[e.Name] = true
			if x.implicit[e.Name] {
				x.act.Features[e.Name] = true
			}
		}
		x.act.strong[e.Name] = append(x.act.strong[e.Name], e.Feature)
	case types.EntryWeakDepFeature:
		if _, ok := x.act.optional[e.Name]; !ok {
			return errcode.New(errcode.UnknownDependency, op, fmt.Sprintf("%q names no dependency", e.String()))
		}
		x.act.weak[e.Name] = append(x.act.weak[e.Name], e.Feature)
	}
	return nil
}

// Check expands every feature of table on its own and joins all problems:
// undefined references, cycles, and features that shadow an implicit
// optional-dependency feature.
func Check(table types.FeatureTable, deps []types.Dependency) error {
	var errs []error
	seen := map[string]bool{}
	implicit := Implicit(table, deps)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if implicit[name] {
			errs = append(errs, errcode.New(errcode.DuplicateFeature, "features.Check",
				fmt.Sprintf("feature %q collides with optional dependency %q", name, name)))
			continue
		}
		if _, err := Activate(table, deps, []string{name}, false); err != nil {
			if msg := err.Error(); !seen[msg] {
				seen[msg] = true
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

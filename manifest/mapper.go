package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

func invalidField(path, field, msg string) error {
	where := field
	if path != "" {
		where = path + ": " + field
	}
	return errcode.New(errcode.InvalidManifest, "manifest.map", where+": "+msg)
}

// MapManifest converts the YAML form into a types.Manifest. It checks shape
// only; Validate checks meaning.
func MapManifest(path string, y YAMLManifest) (types.Manifest, error) {
	if strings.TrimSpace(y.Package.Name) == "" {
		return types.Manifest{}, invalidField(path, "package.name", "name is required")
	}
	if strings.TrimSpace(y.Package.Version) == "" {
		return types.Manifest{}, invalidField(path, "package.version", "version is required")
	}

	m := types.Manifest{
		Identity: types.Identity{
			Name:        y.Package.Name,
			Version:     y.Package.Version,
			License:     y.Package.License,
			Description: y.Package.Description,
			Repository:  y.Package.Repository,
		},
		Chip:     y.Chip,
		XOSCHz:   y.XOSCHz,
		Features: types.FeatureTable{},
	}
	if m.Chip == "" {
		m.Chip = "rp2040"
	}

	m.Dependencies = append(m.Dependencies, MapDependencies(y.Dependencies, types.DepNormal)...)
	m.Dependencies = append(m.Dependencies, MapDependencies(y.DevDependencies, types.DepDev)...)

	for name, entries := range y.Features {
		m.Features[name] = append([]string{}, entries...)
	}

	for i, p := range y.Pins {
		field := fmt.Sprintf("pins[%d]", i)
		if strings.TrimSpace(p.Label) == "" {
			return types.Manifest{}, invalidField(path, field+".label", "label is required")
		}
		if p.GPIO == nil {
			return types.Manifest{}, invalidField(path, field+".gpio", "gpio is required")
		}
		alias := types.PinAlias{Label: p.Label, GPIO: *p.GPIO, Note: p.Note}
		for _, f := range p.Functions {
			fn := types.Function(strings.ToLower(strings.TrimSpace(f)))
			if !fn.Valid() {
				return types.Manifest{}, invalidField(path, field+".functions", fmt.Sprintf("unknown function %q", f))
			}
			alias.Functions = append(alias.Functions, fn)
		}
		m.Pins = append(m.Pins, alias)
	}

	for i, b := range y.Buses {
		field := fmt.Sprintf("buses[%d]", i)
		if b.ID == "" {
			return types.Manifest{}, invalidField(path, field+".id", "id is required")
		}
		kind := types.BusKind(strings.ToLower(b.Kind))
		switch kind {
		case types.BusI2C, types.BusSPI, types.BusUART:
		default:
			return types.Manifest{}, invalidField(path, field+".kind", fmt.Sprintf("unknown bus kind %q", b.Kind))
		}
		pins := make(map[string]int, len(b.Pins))
		for sig, n := range b.Pins {
			pins[strings.ToLower(sig)] = n
		}
		m.Buses = append(m.Buses, types.BusDefault{ID: b.ID, Kind: kind, Pins: pins, Hz: b.Hz})
	}
	return m, nil
}

// MapDependencies flattens a Cargo-style table, sorted by name.
func MapDependencies(t DependencyTable, kind types.DepKind) []types.Dependency {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.Dependency, 0, len(names))
	for _, name := range names {
		yd := t[name]
		d := types.Dependency{
			Name:     name,
			Req:      yd.Version,
			Package:  yd.Package,
			Path:     yd.Path,
			Optional: yd.Optional,
			Features: append([]string(nil), yd.Features...),
			Kind:     kind,
		}
		if d.Req == "" {
			d.Req = "*"
		}
		if yd.DefaultFeatures != nil && !*yd.DefaultFeatures {
			d.NoDefault = true
		}
		out = append(out, d)
	}
	return out
}

// DependencyTableOf is the inverse of MapDependencies for one kind.
func DependencyTableOf(deps []types.Dependency, kind types.DepKind) DependencyTable {
	out := DependencyTable{}
	for _, d := range deps {
		if d.IsDev() != (kind == types.DepDev) {
			continue
		}
		yd := YAMLDependency{
			Version:  d.Req,
			Package:  d.Package,
			Path:     d.Path,
			Optional: d.Optional,
			Features: d.Features,
		}
		if d.NoDefault {
			off := false
			yd.DefaultFeatures = &off
		}
		out[d.Name] = yd
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToYAML converts a manifest into its on-disk form.
func ToYAML(m types.Manifest) YAMLManifest {
	y := YAMLManifest{
		Package: YAMLPackage{
			Name:        m.Identity.Name,
			Version:     m.Identity.Version,
			License:     m.Identity.License,
			Description: m.Identity.Description,
			Repository:  m.Identity.Repository,
		},
		Chip:            m.Chip,
		XOSCHz:          m.XOSCHz,
		Dependencies:    DependencyTableOf(m.Dependencies, types.DepNormal),
		DevDependencies: DependencyTableOf(m.Dependencies, types.DepDev),
	}
	if len(m.Features) > 0 {
		y.Features = map[string][]string{}
		for name, entries := range m.Features {
			y.Features[name] = append([]string{}, entries...)
		}
	}
	for _, p := range m.Pins {
		gpio := p.GPIO
		yp := YAMLPin{Label: p.Label, GPIO: &gpio, Note: p.Note}
		for _, f := range p.Functions {
			yp.Functions = append(yp.Functions, string(f))
		}
		y.Pins = append(y.Pins, yp)
	}
	for _, b := range m.Buses {
		y.Buses = append(y.Buses, YAMLBus{ID: b.ID, Kind: string(b.Kind), Pins: b.Pins, Hz: b.Hz})
	}
	return y
}

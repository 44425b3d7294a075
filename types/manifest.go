package types

import "strings"

// DepKind separates shipped dependencies from example-only ones.
type DepKind string

const (
	DepNormal DepKind = "normal"
	DepDev    DepKind = "dev"
)

// Dependency is one declared dependency of a package.
//
// Req is a Cargo-style version requirement. Package renames the dependency:
// Name is how features refer to it, Package is what gets looked up. Path,
// when set, substitutes a local source tree for the registry release.
type Dependency struct {
	Name      string   `json:"name" yaml:"name"`
	Req       string   `json:"req" yaml:"req"`
	Package   string   `json:"package,omitempty" yaml:"package,omitempty"`
	Path      string   `json:"path,omitempty" yaml:"path,omitempty"`
	Optional  bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	NoDefault bool     `json:"no_default_features,omitempty" yaml:"no_default_features,omitempty"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty"`
	Kind      DepKind  `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// PackageName is the looked-up package, honouring renames.
func (d Dependency) PackageName() string {
	if d.Package != "" {
		return d.Package
	}
	return d.Name
}

// IsDev reports whether the dependency is example/test only.
func (d Dependency) IsDev() bool { return d.Kind == DepDev }

// FeatureTable maps a feature name to the entries it activates.
//
// Entry forms:
//
//	name        another feature, or an optional dependency
//	dep:name    optional dependency without an implicit feature
//	name/feat   enable dependency name and its feature feat
//	name?/feat  enable feat on name only if name is enabled elsewhere
type FeatureTable map[string][]string

// DefaultFeature is the feature that is on unless default features are off.
const DefaultFeature = "default"

// EntryKind classifies one feature table entry.
type EntryKind uint8

const (
	EntryFeature EntryKind = iota
	EntryDep
	EntryDepFeature
	EntryWeakDepFeature
)

// Entry is a parsed feature table entry.
type Entry struct {
	Kind    EntryKind
	Name    string
	Feature string
}

// ParseEntry splits a raw feature table entry.
func ParseEntry(s string) Entry {
	if rest, ok := strings.CutPrefix(s, "dep:"); ok {
		return Entry{Kind: EntryDep, Name: rest}
	}
	if dep, feat, ok := strings.Cut(s, "/"); ok {
		if d, weak := strings.CutSuffix(dep, "?"); weak {
			return Entry{Kind: EntryWeakDepFeature, Name: d, Feature: feat}
		}
		return Entry{Kind: EntryDepFeature, Name: dep, Feature: feat}
	}
	return Entry{Kind: EntryFeature, Name: s}
}

func (e Entry) String() string {
	switch e.Kind {
	case EntryDep:
		return "dep:" + e.Name
	case EntryDepFeature:
		return e.Name + "/" + e.Feature
	case EntryWeakDepFeature:
		return e.Name + "?/" + e.Feature
	default:
		return e.Name
	}
}

// Manifest is the complete declaration of one board support package.
type Manifest struct {
	Identity     Identity     `json:"package" yaml:"package"`
	Chip         string       `json:"chip" yaml:"chip"`
	XOSCHz       uint32       `json:"xosc_hz" yaml:"xosc_hz"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
	Features     FeatureTable `json:"features" yaml:"features"`
	Pins         []PinAlias   `json:"pins" yaml:"pins"`
	Buses        []BusDefault `json:"buses,omitempty" yaml:"buses,omitempty"`
}

// Dependency returns the named dependency.
func (m *Manifest) Dependency(name string) (Dependency, bool) {
	for _, d := range m.Dependencies {
		if d.Name == name {
			return d, true
		}
	}
	return Dependency{}, false
}

// Pin returns the alias with the given label (case-insensitive).
func (m *Manifest) Pin(label string) (PinAlias, bool) {
	for _, p := range m.Pins {
		if strings.EqualFold(p.Label, label) {
			return p, true
		}
	}
	return PinAlias{}, false
}

// Bus returns the default bus with the given ID.
func (m *Manifest) Bus(id string) (BusDefault, bool) {
	for _, b := range m.Buses {
		if b.ID == id {
			return b, true
		}
	}
	return BusDefault{}, false
}

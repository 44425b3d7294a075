package manifest

import "gopkg.in/yaml.v3"

// YAMLManifest is the on-disk form of a board manifest. Dependency tables
// follow the Cargo layout: a bare string is a version requirement.
type YAMLManifest struct {
	Package         YAMLPackage         `yaml:"package"`
	Chip            string              `yaml:"chip,omitempty"`
	XOSCHz          uint32              `yaml:"xosc_hz,omitempty"`
	Dependencies    DependencyTable     `yaml:"dependencies,omitempty"`
	DevDependencies DependencyTable     `yaml:"dev-dependencies,omitempty"`
	Features        map[string][]string `yaml:"features,omitempty"`
	Pins            []YAMLPin           `yaml:"pins,omitempty"`
	Buses           []YAMLBus           `yaml:"buses,omitempty"`
}

type YAMLPackage struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	License     string `yaml:"license,omitempty"`
	Description string `yaml:"description,omitempty"`
	Repository  string `yaml:"repository,omitempty"`
}

type YAMLDependency struct {
	Version         string   `yaml:"version,omitempty"`
	Package         string   `yaml:"package,omitempty"`
	Path            string   `yaml:"path,omitempty"`
	Optional        bool     `yaml:"optional,omitempty"`
	DefaultFeatures *bool    `yaml:"default-features,omitempty"`
	Features        []string `yaml:"features,omitempty"`
}

// DependencyTable is keyed by the dependency name used in feature entries.
type DependencyTable map[string]YAMLDependency

func (d *YAMLDependency) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*d = YAMLDependency{Version: n.Value}
		return nil
	}
	type plain YAMLDependency
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*d = YAMLDependency(p)
	return nil
}

func (d YAMLDependency) MarshalYAML() (any, error) {
	if d.Package == "" && d.Path == "" && !d.Optional && d.DefaultFeatures == nil && len(d.Features) == 0 {
		return d.Version, nil
	}
	type plain YAMLDependency
	return plain(d), nil
}

type YAMLPin struct {
	Label     string   `yaml:"label"`
	GPIO      *int     `yaml:"gpio"`
	Functions []string `yaml:"functions,omitempty,flow"`
	Note      string   `yaml:"note,omitempty"`
}

type YAMLBus struct {
	ID   string         `yaml:"id"`
	Kind string         `yaml:"kind"`
	Pins map[string]int `yaml:"pins"`
	Hz   uint32         `yaml:"hz,omitempty"`
}

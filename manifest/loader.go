// Package manifest reads, writes and validates board manifests.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

// Parse decodes one YAML manifest. path is only used in error messages.
func Parse(path string, b []byte) (types.Manifest, error) {
	var dto YAMLManifest
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		if key, line, ok := duplicateFeature(b); ok {
			return types.Manifest{}, errcode.New(errcode.DuplicateFeature, "manifest.Parse",
				fmt.Sprintf("%s: line %d: feature %q defined twice", path, line, key))
		}
		return types.Manifest{}, &errcode.E{C: errcode.InvalidManifest, Op: "manifest.Parse", Msg: path, Err: err}
	}
	return MapManifest(path, dto)
}

// duplicateFeature finds the first key repeated in the top-level features
// mapping. yaml.v3 only reports repeats as generic type errors.
func duplicateFeature(b []byte) (string, int, bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil || len(doc.Content) == 0 {
		return "", 0, false
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return "", 0, false
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "features" || root.Content[i+1].Kind != yaml.MappingNode {
			continue
		}
		feats := root.Content[i+1].Content
		seen := map[string]bool{}
		for j := 0; j+1 < len(feats); j += 2 {
			k := feats[j]
			if seen[k.Value] {
				return k.Value, k.Line, true
			}
			seen[k.Value] = true
		}
	}
	return "", 0, false
}

// Load reads and decodes the manifest at path.
func Load(path string) (types.Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, &errcode.E{C: errcode.InvalidManifest, Op: "manifest.Load", Msg: path, Err: err}
	}
	return Parse(path, b)
}

// LoadDir loads every *.yaml / *.yml file in dir, sorted by board name.
func LoadDir(dir string) ([]types.Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidManifest, Op: "manifest.LoadDir", Msg: dir, Err: err}
	}
	var out []types.Manifest
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		m, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity.Name < out[j].Identity.Name })
	return out, nil
}

// Marshal encodes a manifest as YAML.
func Marshal(m types.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToYAML(m)); err != nil {
		return nil, errcode.Wrap(errcode.InvalidManifest, "manifest.Marshal", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errcode.Wrap(errcode.InvalidManifest, "manifest.Marshal", err)
	}
	return buf.Bytes(), nil
}

// Write stores m as <dir>/<name>.yaml and returns the file path.
func Write(dir string, m types.Manifest) (string, error) {
	b, err := Marshal(m)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errcode.Wrap(errcode.Error, "manifest.Write", err)
	}
	path := filepath.Join(dir, m.Identity.Name+".yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", errcode.Wrap(errcode.Error, "manifest.Write", err)
	}
	return path, nil
}

// Package config finds and loads bspctl.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/danforbes/rp-hal/errcode"
)

const FileName = "bspctl.yaml"

// Config is the workspace configuration. Relative paths are resolved
// against Root.
type Config struct {
	Root         string
	Catalog      string
	Manifests    string
	DefaultBoard string
}

func Default() Config {
	return Config{Root: "."}
}

// FindRoot walks up from start to the first directory holding FileName.
func FindRoot(start string) (string, error) {
	if start == "" {
		return "", errcode.New(errcode.InvalidConfig, "config.findroot", "start dir is empty")
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errcode.Wrap(errcode.Error, "config.findroot", err)
	}
	if info, serr := os.Stat(abs); serr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, FileName)); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", errcode.New(errcode.NotFound, "config.findroot", FileName+" not found above "+abs)
		}
		cur = parent
	}
}

// Load reads FileName from root and applies it on top of Default.
func Load(root string) (Config, error) {
	cfg := Default()
	cfg.Root = root

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, errcode.Wrap(errcode.NotFound, "config.load", err)
		}
		return cfg, errcode.Wrap(errcode.Error, "config.load", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &errcode.E{C: errcode.InvalidConfig, Op: "config.load", Msg: path, Err: err}
	}

	if y.Catalog != "" {
		cfg.Catalog = cfg.abs(y.Catalog)
	}
	if y.Manifests != "" {
		cfg.Manifests = cfg.abs(y.Manifests)
	}
	cfg.DefaultBoard = y.DefaultBoard
	return cfg, nil
}

// Discover finds and loads the configuration for start. A missing file
// yields Default with a nil error.
func Discover(start string) (Config, error) {
	root, err := FindRoot(start)
	if err != nil {
		if errors.Is(err, errcode.NotFound) {
			return Default(), nil
		}
		return Default(), err
	}
	return Load(root)
}

func (c Config) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

type yamlConfig struct {
	Catalog      string `yaml:"catalog"`
	Manifests    string `yaml:"manifests"`
	DefaultBoard string `yaml:"default_board"`
}

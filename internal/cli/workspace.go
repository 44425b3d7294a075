package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/danforbes/rp-hal/boards"
	_ "github.com/danforbes/rp-hal/boards/all"
	"github.com/danforbes/rp-hal/catalog"
	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/internal/config"
	"github.com/danforbes/rp-hal/internal/logger"
	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/types"
)

// workspace is the state shared by every subcommand: flags from the root
// command merged over bspctl.yaml.
type workspace struct {
	dir          string
	catalogPath  string
	manifestsDir string

	cfg     config.Config
	catalog *catalog.Catalog
	cleanup func()
}

func (w *workspace) load() error {
	var err error
	if w.dir != "" {
		w.cfg, err = config.Load(w.dir)
		if errors.Is(err, errcode.NotFound) {
			w.cfg, err = config.Default(), nil
		}
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			wd = "."
		}
		w.cfg, err = config.Discover(wd)
	}
	if err != nil {
		return err
	}
	if w.catalogPath == "" {
		w.catalogPath = w.cfg.Catalog
	}
	if w.manifestsDir == "" {
		w.manifestsDir = w.cfg.Manifests
	}

	if w.catalogPath == "" {
		w.catalog = catalog.Default()
	} else if w.catalog, err = catalog.Load(w.catalogPath); err != nil {
		return err
	}
	logger.L().Debug("workspace.loaded",
		"root", w.cfg.Root, "catalog", w.catalogPath, "manifests", w.manifestsDir)
	return nil
}

// manifests returns the on-disk manifests when a directory is configured,
// the registered boards otherwise.
func (w *workspace) manifests() ([]types.Manifest, error) {
	if w.manifestsDir != "" {
		return manifest.LoadDir(w.manifestsDir)
	}
	return boards.Manifests(), nil
}

// board picks the named board, falling back to default_board.
func (w *workspace) board(args []string) (boards.Board, error) {
	name := w.cfg.DefaultBoard
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return boards.Board{}, errcode.New(errcode.UnknownBoard, "cli.board", "no board given and no default_board configured")
	}
	if w.manifestsDir == "" {
		return boards.Lookup(name)
	}
	ms, err := w.manifests()
	if err != nil {
		return boards.Board{}, err
	}
	for _, m := range ms {
		if m.Identity.Name == name {
			return boards.Board{Manifest: m}, nil
		}
	}
	return boards.Board{}, errcode.New(errcode.UnknownBoard, "cli.board", fmt.Sprintf("%q not in %s", name, w.manifestsDir))
}

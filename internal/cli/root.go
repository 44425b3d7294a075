package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danforbes/rp-hal/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	ws := &workspace{}

	cmd := &cobra.Command{
		Use:          "bspctl",
		Short:        "Inspect, resolve and export RP2040 board support packages",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			ws.cleanup = logger.Setup(logger.Config{Debug: debug, Out: c.ErrOrStderr()})
			return ws.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if ws.cleanup != nil {
				ws.cleanup()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	pf.StringVarP(&ws.dir, "workspace", "w", "", "directory holding bspctl.yaml (autodetected if omitted)")
	pf.StringVar(&ws.catalogPath, "catalog", "", "catalog YAML file (overrides bspctl.yaml)")
	pf.StringVar(&ws.manifestsDir, "manifests", "", "load board manifests from DIR instead of the built-in boards")

	cmd.AddCommand(
		boardsCmd(ws),
		showCmd(ws),
		resolveCmd(ws),
		checkCmd(ws),
		exportCmd(ws),
	)
	return cmd
}

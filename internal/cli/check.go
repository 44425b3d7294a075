package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/internal/logger"
	"github.com/danforbes/rp-hal/resolve"
)

func checkCmd(ws *workspace) *cobra.Command {
	var dev bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Validate and resolve every board under every feature selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := ws.manifests()
			if err != nil {
				return err
			}
			results, cerr := resolve.CheckWorkspace(ms, resolve.Options{
				Dev:     dev,
				Catalog: ws.catalog,
				Logger:  logger.L(),
			})

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s [%s]: %v\n", r.Board, r.Scenario, r.Err)
					continue
				}
				fmt.Fprintf(out, "ok   %s [%s] %d packages\n", r.Board, r.Scenario, r.Packages)
			}
			if cerr != nil {
				logger.L().Debug("check.failed", "err", cerr)
				return errcode.New(errcode.Error, "cli.check", fmt.Sprintf("%d of %d checks failed", failed, len(results)))
			}
			fmt.Fprintf(out, "%d boards, %d checks passed\n", len(ms), len(results))
			return nil
		},
	}

	c.Flags().BoolVar(&dev, "dev", true, "include dev-dependencies")
	return c
}

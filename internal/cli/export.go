package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/types"
)

func exportCmd(ws *workspace) *cobra.Command {
	var (
		all bool
		dir string
	)

	c := &cobra.Command{
		Use:   "export [board]",
		Short: "Write board manifests as YAML files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ms []types.Manifest
			switch {
			case all && len(args) > 0:
				return errcode.New(errcode.Error, "cli.export", "--all takes no board argument")
			case all:
				var err error
				if ms, err = ws.manifests(); err != nil {
					return err
				}
			default:
				b, err := ws.board(args)
				if err != nil {
					return err
				}
				ms = []types.Manifest{b.Manifest}
			}

			for _, m := range ms {
				if err := manifest.Validate(m); err != nil {
					return err
				}
				path, err := manifest.Write(dir, m)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&all, "all", false, "export every board")
	c.Flags().StringVar(&dir, "out", ".", "output directory")
	return c
}

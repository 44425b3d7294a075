package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/internal/logger"
	"github.com/danforbes/rp-hal/resolve"
)

func resolveCmd(ws *workspace) *cobra.Command {
	var (
		featureArgs []string
		noDefault   bool
		all         bool
		dev         bool
		tags        bool
		output      string
	)

	c := &cobra.Command{
		Use:   "resolve [board]",
		Short: "Resolve a board's dependency graph under a feature selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ws.board(args)
			if err != nil {
				return err
			}
			feats, err := splitFeatures(featureArgs)
			if err != nil {
				return err
			}

			g, err := resolve.Resolve(b.Manifest, resolve.Options{
				Features:          feats,
				NoDefaultFeatures: noDefault,
				AllFeatures:       all,
				Dev:               dev,
				Catalog:           ws.catalog,
				Logger:            logger.L(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tags {
				fmt.Fprintln(out, strings.Join(g.Tags(), ","))
				return nil
			}

			switch output {
			case "text":
				return printGraph(cmd, g)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(g)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(g); err != nil {
					return err
				}
				return enc.Close()
			default:
				return errcode.New(errcode.Unsupported, "cli.resolve", fmt.Sprintf("output format %q", output))
			}
		},
	}

	f := c.Flags()
	f.StringArrayVarP(&featureArgs, "features", "F", nil, `features to enable, space or comma separated (repeatable)`)
	f.BoolVar(&noDefault, "no-default-features", false, "do not enable the default feature")
	f.BoolVar(&all, "all-features", false, "enable every feature")
	f.BoolVar(&dev, "dev", false, "include dev-dependencies")
	f.BoolVar(&tags, "tags", false, "print TinyGo build tags instead of the graph")
	f.StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return c
}

// splitFeatures accepts any mix of shell-quoted, space separated and comma
// separated feature lists.
func splitFeatures(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		words, err := shlex.Split(a)
		if err != nil {
			return nil, &errcode.E{C: errcode.UnknownFeature, Op: "cli.features", Msg: a, Err: err}
		}
		for _, w := range words {
			for _, f := range strings.Split(w, ",") {
				if f = strings.TrimSpace(f); f != "" {
					out = append(out, f)
				}
			}
		}
	}
	return out, nil
}

func printGraph(cmd *cobra.Command, g *resolve.Graph) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s features=[%s]\n", g.Root, g.Version, strings.Join(g.Features, " "))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PACKAGE\tVERSION\tKIND\tSOURCE\tFEATURES")
	for _, p := range g.Packages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Version, p.Kind, p.Source, strings.Join(p.Features, ","))
	}
	return tw.Flush()
}

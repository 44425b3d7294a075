package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/types"
)

func boardsCmd(ws *workspace) *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List available boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := ws.manifests()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVERSION\tDESCRIPTION")
			for _, m := range ms {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Identity.Name, m.Identity.Version, m.Identity.Description)
			}
			return tw.Flush()
		},
	}
}

func showCmd(ws *workspace) *cobra.Command {
	var asYAML bool

	c := &cobra.Command{
		Use:   "show [board]",
		Short: "Show a board's identity, features, pins and default buses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ws.board(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asYAML {
				y, err := manifest.Marshal(b.Manifest)
				if err != nil {
					return err
				}
				_, err = out.Write(y)
				return err
			}

			m := b.Manifest
			fmt.Fprintf(out, "%s %s\n", m.Identity.Name, m.Identity.Version)
			if m.Identity.Description != "" {
				fmt.Fprintf(out, "  %s\n", m.Identity.Description)
			}
			fmt.Fprintf(out, "chip: %s  xosc: %d Hz\n\n", m.Chip, m.XOSCHz)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FEATURE\tENABLES")
			for _, f := range sortedFeatures(m.Features) {
				fmt.Fprintf(tw, "%s\t%s\n", f, strings.Join(m.Features[f], ", "))
			}
			fmt.Fprintln(tw)

			fmt.Fprintln(tw, "LABEL\tGPIO\tFUNCTIONS\tNOTE")
			for _, p := range m.Pins {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.Label, p.GPIO, joinFunctions(p.Functions), p.Note)
			}

			if len(m.Buses) > 0 {
				fmt.Fprintln(tw)
				fmt.Fprintln(tw, "BUS\tKIND\tPINS\tHZ")
				for _, bd := range m.Buses {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", bd.ID, bd.Kind, busPins(bd), bd.Hz)
				}
			}
			return tw.Flush()
		},
	}

	c.Flags().BoolVar(&asYAML, "yaml", false, "print the manifest as YAML")
	return c
}

func sortedFeatures(t types.FeatureTable) []string {
	out := make([]string, 0, len(t))
	for f := range t {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func joinFunctions(fs []types.Function) string {
	s := make([]string, len(fs))
	for i, f := range fs {
		s[i] = string(f)
	}
	return strings.Join(s, ",")
}

// busPins renders "sda=4 scl=5" in signal order.
func busPins(b types.BusDefault) string {
	sigs := make([]string, 0, len(b.Pins))
	for s := range b.Pins {
		sigs = append(sigs, s)
	}
	sort.Strings(sigs)
	parts := make([]string, len(sigs))
	for i, s := range sigs {
		parts[i] = fmt.Sprintf("%s=%d", s, b.Pins[s])
	}
	return strings.Join(parts, " ")
}

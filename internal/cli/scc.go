package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dineth14/graphkit/scc"
)

// sccCommand creates the scc command: strongly connected components via
// Kosaraju's two-pass sweep.
func (c *CLI) sccCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scc <manifest.toml>",
		Short: "Compute strongly connected components",
		Long: `Compute the strongly connected components of a directed graph.

Components print one per line, in condensation order: a component appears
before every component it can reach.

Example:
  graphkit scc calls.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			components, err := scc.Kosaraju(g)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Found %d components", len(components)))

			out := cmd.OutOrStdout()
			for i, comp := range components {
				fmt.Fprintf(out, "component %d: %s\n", i, strings.Join(comp, " "))
			}

			return nil
		},
	}

	return cmd
}

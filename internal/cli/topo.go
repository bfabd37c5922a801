package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dineth14/graphkit/toposort"
)

// topoCommand creates the topo command: topological ordering via Kahn or
// the three-color depth-first pass, or exhaustive enumeration.
func (c *CLI) topoCommand() *cobra.Command {
	var (
		algo string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "topo <manifest.toml>",
		Short: "Compute a topological ordering of a directed acyclic graph",
		Long: `Compute a topological ordering of a directed acyclic graph.

With --all every valid ordering is enumerated, which is factorial in the
worst case; keep the graph small.

Examples:
  graphkit topo build.toml
  graphkit topo build.toml --algo dfs
  graphkit topo build.toml --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				orders, err := toposort.All(g)
				if err != nil {
					return err
				}
				if len(orders) == 0 {
					fmt.Fprintln(out, "no ordering: graph has a cycle")
					return nil
				}
				for _, order := range orders {
					fmt.Fprintln(out, strings.Join(order, " "))
				}

				return nil
			}

			var order []string
			switch algo {
			case "kahn":
				order, err = toposort.Kahn(g)
			case "dfs":
				order, err = toposort.DFS(g)
			default:
				return fmt.Errorf("unknown algorithm %q", algo)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(order, " "))

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "kahn", `algorithm: "kahn" or "dfs"`)
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every valid ordering")

	return cmd
}

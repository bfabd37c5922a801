package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dineth14/graphkit/spath"
)

// shortestCommand creates the shortest command: single-source distances via
// Dijkstra, Bellman-Ford, or SPFA, or one row of the Floyd-Warshall
// all-pairs table.
func (c *CLI) shortestCommand() *cobra.Command {
	var (
		algo   string
		target string
	)

	cmd := &cobra.Command{
		Use:   "shortest <manifest.toml> <source>",
		Short: "Compute shortest-path distances from a source vertex",
		Long: `Compute shortest-path distances from a source vertex.

Examples:
  graphkit shortest roads.toml A
  graphkit shortest roads.toml A --algo bellman-ford
  graphkit shortest roads.toml A --target F`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			source := args[1]

			p := newProgress(c.Logger)
			var (
				dist map[string]int64
				prev map[string]string
			)
			switch algo {
			case "dijkstra":
				dist, prev, err = spath.Dijkstra(g, source, spath.WithReturnPath())
			case "bellman-ford":
				dist, err = spath.BellmanFord(g, source)
			case "spfa":
				dist, err = spath.SPFA(g, source)
			case "floyd-warshall":
				var all map[string]map[string]int64
				all, err = spath.FloydWarshall(g)
				if err == nil {
					var ok bool
					if dist, ok = all[source]; !ok {
						err = spath.ErrSourceNotFound
					}
				}
			default:
				return fmt.Errorf("unknown algorithm %q", algo)
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Computed distances from %s via %s", source, algo))

			out := cmd.OutOrStdout()
			for _, v := range g.Vertices() {
				if dist[v] == spath.Unreachable {
					fmt.Fprintf(out, "%s\tunreachable\n", v)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\n", v, dist[v])
			}

			if target != "" && prev != nil {
				path := spath.PathTo(prev, source, target)
				if path == nil {
					fmt.Fprintf(out, "no path to %s\n", target)
				} else {
					fmt.Fprintf(out, "path: %s\n", strings.Join(path, " -> "))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "dijkstra",
		`algorithm: "dijkstra", "bellman-ford", "spfa", or "floyd-warshall"`)
	cmd.Flags().StringVar(&target, "target", "",
		"also print the reconstructed path to this vertex (dijkstra only)")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/mst"
)

// mstCommand creates the mst command: minimum spanning tree via Kruskal or
// Prim.
func (c *CLI) mstCommand() *cobra.Command {
	var (
		algo string
		root string
	)

	cmd := &cobra.Command{
		Use:   "mst <manifest.toml>",
		Short: "Compute a minimum spanning tree",
		Long: `Compute a minimum spanning tree of an undirected graph.

Kruskal spans every component of a disconnected graph; Prim covers only
the component holding --root (default: the lexicographically first vertex).

Examples:
  graphkit mst network.toml
  graphkit mst network.toml --algo prim --root A`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			var (
				tree  []core.Edge
				total int64
			)
			switch algo {
			case "kruskal":
				tree, total, err = mst.Kruskal(g)
			case "prim":
				if root == "" {
					if vs := g.Vertices(); len(vs) > 0 {
						root = vs[0]
					}
				}
				tree, total, err = mst.Prim(g, root)
			default:
				return fmt.Errorf("unknown algorithm %q", algo)
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Spanning tree: %d edges via %s", len(tree), algo))

			out := cmd.OutOrStdout()
			for _, e := range tree {
				fmt.Fprintf(out, "%s\t%s\t%d\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "total weight: %d\n", total)

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "kruskal", `algorithm: "kruskal" or "prim"`)
	cmd.Flags().StringVar(&root, "root", "", "start vertex for prim")

	return cmd
}

// Package cli implements the graphkit command-line interface.
//
// The commands load a graph from a TOML manifest and run one algorithm
// family over it: shortest paths, spanning trees, topological ordering,
// strongly connected components, or 2-SAT. All commands support --verbose
// (-v) for debug-level logging; loggers travel through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version metadata, overridable at build time via -ldflags.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// SetVersion updates the build metadata shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// versionString renders the --version line from whatever metadata is set.
func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit + ")"
	}
	if date != "" {
		s += " built " + date
	}

	return s
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphkit",
		Short:        "Graphkit runs graph algorithms over TOML graph manifests",
		Long:         `Graphkit is a CLI front end for the graphkit library: it loads a graph described in a TOML manifest and runs shortest-path, spanning-tree, ordering, component, or satisfiability algorithms over it.`,
		Version:      versionString(),
		SilenceUsage: true,
	}

	root.AddCommand(c.shortestCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.twosatCommand())
	root.AddCommand(c.completionCommand())

	return root
}

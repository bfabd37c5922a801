package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/twosat"
)

// graphManifest mirrors the TOML graph description:
//
//	directed = true
//	weighted = true
//	vertices = ["isolated"]        # optional, edges add their own endpoints
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	weight = 4                     # optional on unweighted graphs
type graphManifest struct {
	Directed bool     `toml:"directed"`
	Weighted bool     `toml:"weighted"`
	Loops    bool     `toml:"loops"`
	Vertices []string `toml:"vertices"`
	Edges    []struct {
		From   string `toml:"from"`
		To     string `toml:"to"`
		Weight int64  `toml:"weight"`
	} `toml:"edge"`
}

// loadGraph reads a TOML graph manifest and materializes it.
func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m graphManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	var opts []core.GraphOption
	if m.Directed {
		opts = append(opts, core.WithDirected())
	}
	if m.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if m.Loops {
		opts = append(opts, core.WithLoops())
	}

	g := core.NewGraph(opts...)
	for _, v := range m.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v, err)
		}
	}
	for _, e := range m.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}

	logger.Debugf("loaded %s: %d vertices, %d edges", path, g.VertexCount(), g.EdgeCount())

	return g, nil
}

// clauseManifest mirrors the TOML 2-SAT description:
//
//	variables = 3
//
//	[[clause]]
//	a = 1
//	b = -2
type clauseManifest struct {
	Variables int `toml:"variables"`
	Clauses   []struct {
		A int `toml:"a"`
		B int `toml:"b"`
	} `toml:"clause"`
}

// loadClauses reads a TOML 2-SAT manifest.
func loadClauses(ctx context.Context, path string) ([]twosat.Clause, int, error) {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read manifest: %w", err)
	}

	var m clauseManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, 0, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	clauses := make([]twosat.Clause, len(m.Clauses))
	for i, c := range m.Clauses {
		clauses[i] = twosat.Clause{A: c.A, B: c.B}
	}

	logger.Debugf("loaded %s: %d variables, %d clauses", path, m.Variables, len(clauses))

	return clauses, m.Variables, nil
}

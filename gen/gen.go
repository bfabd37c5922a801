// Package gen builds deterministic graph fixtures: paths, cycles, stars,
// complete graphs, and seeded sparse random graphs. The generators exist
// for tests and benchmarks that need reproducible topologies; the same
// shape, options, and seed always produce an identical graph.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Dineth14/graphkit/core"
)

var (
	// ErrTooFewVertices is returned when n is below the shape's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrBadWeightRange is returned when WithWeightRange gets min > max.
	ErrBadWeightRange = errors.New("gen: weight range min exceeds max")
)

type config struct {
	seed      int64
	minW      int64
	maxW      int64
	weighted  bool
	graphOpts []core.GraphOption
}

// Option adjusts generation.
type Option func(*config)

// WithSeed fixes the random source for stochastic generators and weights.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightRange makes the graph weighted, drawing each edge weight
// uniformly from [min, max].
func WithWeightRange(min, max int64) Option {
	return func(c *config) {
		c.weighted = true
		c.minW, c.maxW = min, max
	}
}

// WithGraphOptions forwards extra mode flags to the underlying graph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

func resolve(opts []Option) (config, error) {
	cfg := config{seed: 1, minW: 1, maxW: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minW > cfg.maxW {
		return cfg, ErrBadWeightRange
	}

	return cfg, nil
}

func (c config) newGraph() *core.Graph {
	opts := c.graphOpts
	if c.weighted {
		opts = append([]core.GraphOption{core.WithWeighted()}, opts...)
	}

	return core.NewGraph(opts...)
}

func (c config) weight(rng *rand.Rand) int64 {
	if !c.weighted {
		return 0
	}
	if c.minW == c.maxW {
		return c.minW
	}

	return c.minW + rng.Int63n(c.maxW-c.minW+1)
}

// id names the i-th vertex. All generators share the scheme, so fixtures
// compose predictably.
func id(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Path builds the n-vertex path v0-v1-...-v(n-1). Needs n ≥ 1.
func Path(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(cfg.seed))
	if err := g.AddVertex(id(0)); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(i-1), id(i), cfg.weight(rng)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the n-vertex cycle C_n. Needs n ≥ 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := 0; i < n; i++ {
		if err := g.AddEdge(id(i), id((i+1)%n), cfg.weight(rng)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds a hub v0 with n-1 leaves. Needs n ≥ 2.
func Star(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(0), id(i), cfg.weight(rng)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds K_n, every vertex pair joined. Needs n ≥ 2.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(id(i), id(j), cfg.weight(rng)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomSparse builds an n-vertex graph with a spanning path plus extra
// random non-loop edges, so the result is always connected. The seed fixes
// every choice. Needs n ≥ 2 and extra ≥ 0.
func RandomSparse(n, extra int, opts ...Option) (*core.Graph, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 || extra < 0 {
		return nil, ErrTooFewVertices
	}

	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(i-1), id(i), cfg.weight(rng)); err != nil {
			return nil, err
		}
	}
	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if err := g.AddEdge(id(u), id(v), cfg.weight(rng)); err != nil {
			return nil, err
		}
		added++
	}

	return g, nil
}

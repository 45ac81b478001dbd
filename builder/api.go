package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return wrapped sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned;
// no partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds u→v with a weight drawn from cfg when a WeightFn is set.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var opts []core.EdgeOption
	if cfg.weightFn != nil {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

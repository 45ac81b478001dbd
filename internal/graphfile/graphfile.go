// Package graphfile loads a core.Graph from a TOML description:
//
//	directed = true
//	loops    = false
//	vertices = ["a", "b", "c"]   # optional; edges create their endpoints
//
//	[[edges]]
//	from   = "a"
//	to     = "b"
//	weight = 2.5                 # optional; integer or float
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvpath/core"
)

var (
	// ErrBadEdge indicates an edge with an empty endpoint.
	ErrBadEdge = errors.New("graphfile: edge endpoint is empty")

	// ErrBadWeight indicates a weight that is not a finite number.
	ErrBadWeight = errors.New("graphfile: weight is not a number")

	// ErrUnknownKey indicates a key the format does not define.
	ErrUnknownKey = errors.New("graphfile: unknown key")
)

// File mirrors the TOML document.
type File struct {
	Directed bool       `toml:"directed"`
	Loops    bool       `toml:"loops"`
	Vertices []string   `toml:"vertices"`
	Edges    []EdgeSpec `toml:"edges"`
}

// EdgeSpec is one [[edges]] table. Weight stays untyped so that both
// `weight = 2` and `weight = 2.5` are accepted.
type EdgeSpec struct {
	From   string      `toml:"from"`
	To     string      `toml:"to"`
	Weight interface{} `toml:"weight"`
}

// Load reads and builds the graph stored at path.
func Load(path string) (*core.Graph, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", path, err)
	}
	if err = checkKeys(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f.Graph()
}

// Decode reads a TOML document from r and builds the graph.
func Decode(r io.Reader) (*core.Graph, error) {
	var f File
	md, err := toml.DecodeReader(r, &f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	if err = checkKeys(md); err != nil {
		return nil, err
	}

	return f.Graph()
}

func checkKeys(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// Graph builds a core.Graph from f. Vertices are added first, in file
// order, then edges in file order.
func (f *File) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(f.Directed)}
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range f.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", id, err)
		}
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrBadEdge, i)
		}
		var eopts []core.EdgeOption
		if e.Weight != nil {
			w, err := toWeight(e.Weight)
			if err != nil {
				return nil, fmt.Errorf("edges[%d] %s→%s: %w", i, e.From, e.To, err)
			}
			eopts = append(eopts, core.WithWeight(w))
		}
		if _, err := g.AddEdge(e.From, e.To, eopts...); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

func toWeight(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %v", ErrBadWeight, n)
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w: %v (%T)", ErrBadWeight, v, v)
}

package main

import (
	"fmt"

	"github.com/katalvlaran/lvpath/traversal"
)

// searchCmd defines the configuration options for the search command.
type searchCmd struct {
	Start    string `short:"s" long:"start" description:"Start vertex" required:"true"`
	Goal     string `short:"t" long:"goal" description:"Goal vertex; omit to list every reachable vertex"`
	DFS      bool   `long:"dfs" description:"Depth-first instead of breadth-first"`
	MaxDepth int    `long:"maxdepth" description:"Do not expand paths longer than this many edges (0 = unlimited)"`
}

// searchCfg defines the configuration options for the command.
var searchCfg = searchCmd{}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *searchCmd) Execute(args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	method := traversal.BreadthFirst
	if cmd.DFS {
		method = traversal.DepthFirst
	}
	opts := []traversal.Option{traversal.WithMethod(method), traversal.WithMaxDepth(cmd.MaxDepth)}

	if cmd.Goal != "" {
		path, err := traversal.Find[string](g, cmd.Start, cmd.Goal, opts...)
		if err != nil {
			return err
		}
		if path == nil {
			fmt.Fprintf(out, "%s is unreachable from %s\n", cmd.Goal, cmd.Start)
			return nil
		}
		fmt.Fprintln(out, formatPath(path))
		return nil
	}

	paths, err := traversal.Paths[string](g, cmd.Start, opts...)
	if err != nil {
		return err
	}
	log.Infof("%d of %d vertices reachable from %s", len(paths), g.VertexCount(), cmd.Start)
	for _, v := range sortedKeys(paths) {
		fmt.Fprintf(out, "%s: %s\n", v, formatPath(paths[v]))
	}

	return nil
}

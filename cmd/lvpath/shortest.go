package main

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// shortestCmd defines the configuration options for the shortest command.
type shortestCmd struct {
	Start       string  `short:"s" long:"start" description:"Source vertex" required:"true"`
	Goal        string  `short:"t" long:"goal" description:"Goal vertex; omit to cover every vertex"`
	Distances   bool    `long:"distances" description:"Print distances instead of paths"`
	MaxDistance float64 `long:"maxdistance" description:"Leave vertices farther than this unreached (0 = unlimited)"`
}

// shortestCfg defines the configuration options for the command.
var shortestCfg = shortestCmd{}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *shortestCmd) Execute(args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var opts []dijkstra.Option
	if cmd.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(cmd.MaxDistance))
	}
	if cmd.Goal != "" {
		opts = append(opts, dijkstra.WithGoal(cmd.Goal))
	}

	res, err := dijkstra.Run[string](g, cmd.Start, opts...)
	if err != nil {
		return err
	}

	if cmd.Goal != "" {
		d, ok := res.Distance(cmd.Goal)
		switch {
		case !ok:
			fmt.Fprintf(out, "%s is unreachable from %s\n", cmd.Goal, cmd.Start)
		case cmd.Distances:
			fmt.Fprintf(out, "%g\n", d)
		default:
			fmt.Fprintf(out, "%s (%g)\n", formatPath(res.PathTo(cmd.Goal)), d)
		}
		return nil
	}

	if cmd.Distances {
		dist := res.Distances()
		for _, v := range sortedKeys(dist) {
			fmt.Fprintf(out, "%s\t%g\n", v, dist[v])
		}
		return nil
	}
	paths := res.Paths()
	for _, v := range sortedKeys(paths) {
		d, _ := res.Distance(v)
		fmt.Fprintf(out, "%s: %s (%g)\n", v, formatPath(paths[v]), d)
	}

	return nil
}

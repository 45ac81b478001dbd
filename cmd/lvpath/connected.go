package main

import (
	"fmt"

	"github.com/katalvlaran/lvpath/traversal"
)

// connectedCmd defines the configuration options for the connected command.
type connectedCmd struct{}

// connectedCfg defines the configuration options for the command.
var connectedCfg = connectedCmd{}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *connectedCmd) Execute(args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	if !g.Directed() {
		ok, err := traversal.WeaklyConnected(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "connected: %t\n", ok)
		return nil
	}

	strong, err := traversal.StronglyConnected(g)
	if err != nil {
		return err
	}
	weak, err := traversal.WeaklyConnected(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "strongly connected: %t\nweakly connected: %t\n", strong, weak)

	return nil
}

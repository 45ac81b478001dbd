package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/traversal"
)

var (
	log btclog.Logger = btclog.Disabled

	// out receives command results; logs go to stderr.
	out io.Writer = os.Stdout

	backendLog = btclog.NewBackend(os.Stderr)
)

// subsystemLoggers maps each subsystem tag to its logger so --loglevel can
// adjust all of them at once.
var subsystemLoggers = map[string]btclog.Logger{}

// setupLoggers creates the subsystem loggers and hands them to the library
// packages.
func setupLoggers() {
	log = backendLog.Logger("MAIN")
	travLog := backendLog.Logger("TRAV")
	dijkLog := backendLog.Logger("DIJK")
	traversal.UseLogger(travLog)
	dijkstra.UseLogger(dijkLog)

	subsystemLoggers["MAIN"] = log
	subsystemLoggers["TRAV"] = travLog
	subsystemLoggers["DIJK"] = dijkLog
}

// newParser wires the global options and every command.
func newParser() *flags.Parser {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("search",
		"Breadth- or depth-first search from a start vertex",
		"Print the first path found to --goal, or to every reachable "+
			"vertex when no goal is given.", &searchCfg)
	parser.AddCommand("shortest",
		"Dijkstra shortest paths from a start vertex",
		"Print the shortest path (or distance) to --goal, or to every "+
			"vertex when no goal is given.  Every edge needs a "+
			"non-negative weight.", &shortestCfg)
	parser.AddCommand("connected",
		"Report whether the graph is connected",
		"Undirected graphs report connectivity; directed graphs report "+
			"strong and weak connectivity.", &connectedCfg)

	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	setupLoggers()
	parser := newParser()

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btclog"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/internal/graphfile"
)

const defaultLogLevel = "info"

// Default global config.
var cfg = &config{
	LogLevel: defaultLogLevel,
}

// config defines the global configuration options.
type config struct {
	GraphFile string `short:"g" long:"graph" description:"TOML file describing the graph"`
	LogLevel  string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// setupGlobalConfig validates the global options and applies the log level.
func setupGlobalConfig() error {
	if cfg.GraphFile == "" {
		return errors.New("the --graph option is required")
	}

	level, ok := btclog.LevelFromString(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}

	return nil
}

// loadGraph validates the global config and loads the graph file.
func loadGraph() (*core.Graph, error) {
	if err := setupGlobalConfig(); err != nil {
		return nil, err
	}
	g, err := graphfile.Load(cfg.GraphFile)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %s: %d vertices, %d edges", cfg.GraphFile, g.VertexCount(), g.EdgeCount())

	return g, nil
}

// formatPath renders a path as "a -> b -> c".
func formatPath(p []string) string {
	return strings.Join(p, " -> ")
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

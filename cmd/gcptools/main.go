// Command gcptools serves Google Cloud tool groups over an MCP stdio
// connection. By default it composes every group under its own name
// prefix; --only narrows the selection, and a single selected group is
// served with unprefixed tool names.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/gcptools/gcprojects"
	"github.com/jonwraymond/gcptools/gcrun"
	"github.com/jonwraymond/gcptools/gcsecrets"
	"github.com/jonwraymond/gcptools/server"
	"github.com/jonwraymond/gcptools/toolset"
)

var only []string

var rootCmd = &cobra.Command{
	Use:          "gcptools",
	Short:        "MCP server exposing Google Cloud Secret Manager and Cloud Run tools",
	SilenceUsage: true,
	RunE:         serve,
}

func init() {
	rootCmd.Flags().StringSliceVar(&only, "only", nil,
		"tool groups to serve (secret, cloudrun, projects); default all")
	rootCmd.Version = server.Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, _ []string) error {
	// stdout carries the MCP framing; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sets, err := selectSets(only)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.Compose("gcp", log, sets...)
	groups := make([]string, 0, len(sets))
	for _, set := range sets {
		groups = append(groups, set.Name())
	}
	log.Info("serving over stdio", "groups", groups)
	return server.ServeStdio(ctx, srv)
}

func selectSets(names []string) ([]*toolset.Set, error) {
	all := map[string]func() *toolset.Set{
		"secret":   func() *toolset.Set { return gcsecrets.Toolset(gcsecrets.New()) },
		"cloudrun": func() *toolset.Set { return gcrun.Toolset(gcrun.New()) },
		"projects": func() *toolset.Set { return gcprojects.Toolset(gcprojects.New()) },
	}

	if len(names) == 0 {
		names = []string{"secret", "cloudrun", "projects"}
	}

	sets := make([]*toolset.Set, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		build, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool group %q (valid: secret, cloudrun, projects)", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		sets = append(sets, build())
	}
	return sets, nil
}

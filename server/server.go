// Package server composes tool groups into a single MCP server and serves
// it over a message-framed standard-stream connection.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/gcptools/toolset"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// Compose builds an MCP server exposing the given tool groups. A single
// group keeps its tools' plain names; with several groups each group's
// name becomes a prefix, so cross-group name collisions are impossible by
// construction.
func Compose(name string, log *slog.Logger, sets ...*toolset.Set) *mcp.Server {
	if log == nil {
		log = slog.Default()
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: name, Version: Version}, nil)
	for _, set := range sets {
		prefix := ""
		if len(sets) > 1 {
			prefix = set.Name()
		}
		names := set.Install(srv, prefix)
		log.Info("registered tool group", "group", set.Name(), "tools", names)
	}
	return srv
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects or ctx is canceled. Log output must go to stderr; stdout
// carries the protocol framing.
func ServeStdio(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// Package toolset binds externally callable tool names to handler functions
// and installs them on an MCP server, optionally under a name prefix so that
// several tool groups can share one server without colliding.
package toolset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrDuplicateTool is returned when adding a tool whose name is already
// taken within the set.
var ErrDuplicateTool = errors.New("tool already registered")

// Handler is the function signature for tool handlers. The input struct
// declares the tool's parameters; the MCP layer validates arguments against
// the inferred schema before the handler runs. Handlers return the complete
// external result and no error: failures travel inside the result envelope,
// never across the protocol boundary.
type Handler[In any] func(ctx context.Context, in In) any

// Def describes one callable tool: its unprefixed name, description, and
// registration hook.
type Def struct {
	name        string
	description string
	register    func(srv *mcp.Server, qualified string)
}

// Name returns the tool's unprefixed name.
func (d Def) Name() string {
	return d.name
}

// NewDef creates a tool definition. The parameter schema is inferred from
// the In struct's fields when the definition is installed.
func NewDef[In any](name, description string, h Handler[In]) Def {
	return Def{
		name:        name,
		description: description,
		register: func(srv *mcp.Server, qualified string) {
			mcp.AddTool(srv, &mcp.Tool{Name: qualified, Description: description},
				func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
					return nil, h(ctx, in), nil
				})
		},
	}
}

// Set is a named group of tool definitions. The set name doubles as the
// default prefix when the set is mounted alongside other sets.
type Set struct {
	name string

	mu   sync.RWMutex
	defs []Def
	seen map[string]struct{}
}

// New creates an empty set with the given group name.
func New(name string) *Set {
	return &Set{
		name: name,
		seen: make(map[string]struct{}),
	}
}

// Name returns the set's group name.
func (s *Set) Name() string {
	return s.name
}

// Add appends tool definitions to the set.
// Returns ErrDuplicateTool if a name is already taken.
func (s *Set) Add(defs ...Def) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range defs {
		if _, exists := s.seen[d.name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, d.name)
		}
		s.seen[d.name] = struct{}{}
		s.defs = append(s.defs, d)
	}
	return nil
}

// MustAdd is like Add but panics on a duplicate name. Tool sets are
// assembled from static definitions at startup, so a duplicate is a
// programming error.
func (s *Set) MustAdd(defs ...Def) {
	if err := s.Add(defs...); err != nil {
		panic(err)
	}
}

// Names returns the unprefixed tool names in registration order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.defs))
	for _, d := range s.defs {
		out = append(out, d.name)
	}
	return out
}

// Install registers every tool in the set on the server, prefixing names
// with Qualify. It returns the names as registered.
func (s *Set) Install(srv *mcp.Server, prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.defs))
	for _, d := range s.defs {
		qualified := Qualify(prefix, d.name)
		d.register(srv, qualified)
		out = append(out, qualified)
	}
	return out
}

// Qualify joins a namespace prefix and a tool name. An empty prefix leaves
// the name untouched.
func Qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}

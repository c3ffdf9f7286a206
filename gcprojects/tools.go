package gcprojects

import (
	"context"

	"github.com/jonwraymond/gcptools/envelope"
	"github.com/jonwraymond/gcptools/toolset"
)

type listProjectsInput struct{}

// Toolset binds the adapter's operation to its externally callable name.
// Mount it under the "projects" prefix when composing with other groups.
func Toolset(a *Adapter) *toolset.Set {
	set := toolset.New("projects")
	set.MustAdd(
		toolset.NewDef("list_projects", "List all GCP projects the user has access to", a.listProjects),
	)
	return set
}

func (a *Adapter) listProjects(ctx context.Context, _ listProjectsInput) any {
	projects, err := a.List(ctx)
	if err != nil {
		return envelope.ErrorRows("Error listing projects", err)
	}
	if projects == nil {
		projects = []ProjectInfo{}
	}
	return projects
}

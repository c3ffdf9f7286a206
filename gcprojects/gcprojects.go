// Package gcprojects adapts Google Cloud Resource Manager to the gcptools
// call/result contract: a single listing of the projects the ambient
// credentials can see.
package gcprojects

import (
	"context"
	"errors"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ProjectInfo is one row of a project listing.
type ProjectInfo struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Client is the slice of the Resource Manager API the adapter uses.
type Client interface {
	SearchProjects(ctx context.Context, req *resourcemanagerpb.SearchProjectsRequest) ([]*resourcemanagerpb.Project, error)
	Close() error
}

// Dial opens a Client for a single operation.
type Dial func(ctx context.Context) (Client, error)

// Adapter exposes the project listing operation.
type Adapter struct {
	dial Dial
}

// New creates an Adapter backed by the Resource Manager API.
func New(opts ...option.ClientOption) *Adapter {
	return &Adapter{dial: func(ctx context.Context) (Client, error) {
		return dialAPI(ctx, opts...)
	}}
}

// NewWithDial creates an Adapter using a custom client dialer.
func NewWithDial(dial Dial) *Adapter {
	return &Adapter{dial: dial}
}

// List returns the display name and project ID of every project the
// caller's credentials can see. Ordering is provider-defined.
func (a *Adapter) List(ctx context.Context) ([]ProjectInfo, error) {
	client, err := a.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	projects, err := client.SearchProjects(ctx, &resourcemanagerpb.SearchProjectsRequest{})
	if err != nil {
		return nil, err
	}

	out := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectInfo{Name: p.GetDisplayName(), ID: p.GetProjectId()})
	}
	return out, nil
}

type apiClient struct {
	c *resourcemanager.ProjectsClient
}

func dialAPI(ctx context.Context, opts ...option.ClientOption) (Client, error) {
	c, err := resourcemanager.NewProjectsClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &apiClient{c: c}, nil
}

func (a *apiClient) SearchProjects(ctx context.Context, req *resourcemanagerpb.SearchProjectsRequest) ([]*resourcemanagerpb.Project, error) {
	it := a.c.SearchProjects(ctx, req)
	var out []*resourcemanagerpb.Project
	for {
		p, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}

func (a *apiClient) Close() error {
	return a.c.Close()
}

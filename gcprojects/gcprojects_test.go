package gcprojects

import (
	"context"
	"strings"
	"testing"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jonwraymond/gcptools/envelope"
)

type fakeClient struct {
	projects []*resourcemanagerpb.Project
	err      error
	closed   bool
}

func (f *fakeClient) SearchProjects(_ context.Context, _ *resourcemanagerpb.SearchProjectsRequest) ([]*resourcemanagerpb.Project, error) {
	return f.projects, f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func newTestAdapter(t *testing.T, fake *fakeClient) *Adapter {
	t.Helper()
	return NewWithDial(func(_ context.Context) (Client, error) {
		return fake, nil
	})
}

func TestList(t *testing.T) {
	fake := &fakeClient{projects: []*resourcemanagerpb.Project{
		{DisplayName: "Acme Production", ProjectId: "acme-prod"},
		{DisplayName: "Acme Staging", ProjectId: "acme-staging"},
	}}
	a := newTestAdapter(t, fake)

	projects, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len(projects) = %d, want 2", len(projects))
	}
	if projects[0].Name != "Acme Production" || projects[0].ID != "acme-prod" {
		t.Errorf("projects[0] = %+v", projects[0])
	}
	if !fake.closed {
		t.Error("client was not closed")
	}
}

func TestListProjectsTool_ErrorConvention(t *testing.T) {
	fake := &fakeClient{err: status.Error(codes.PermissionDenied, "denied")}
	a := newTestAdapter(t, fake)

	result := a.listProjects(context.Background(), listProjectsInput{})

	rows, ok := result.([]envelope.ErrorRow)
	if !ok {
		t.Fatalf("result type = %T, want []envelope.ErrorRow", result)
	}
	if len(rows) != 1 || !strings.HasPrefix(rows[0].Error, "Error listing projects: ") {
		t.Errorf("rows = %v", rows)
	}
}

func TestListProjectsTool_Empty(t *testing.T) {
	a := newTestAdapter(t, &fakeClient{})

	result := a.listProjects(context.Background(), listProjectsInput{})

	projects, ok := result.([]ProjectInfo)
	if !ok {
		t.Fatalf("result type = %T, want []ProjectInfo", result)
	}
	if len(projects) != 0 {
		t.Errorf("projects = %v, want empty", projects)
	}
}

package gcrun

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jonwraymond/gcptools/envelope"
)

func TestToolset_Names(t *testing.T) {
	set := Toolset(New())

	if set.Name() != "cloudrun" {
		t.Errorf("Name() = %q, want %q", set.Name(), "cloudrun")
	}
	want := []string{"list_cloud_run_services", "delete_cloud_run_service", "get_cloud_run_service_logs"}
	got := set.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListServicesTool_ErrorConvention(t *testing.T) {
	fake := &fakeServicesClient{listErr: status.Error(codes.Unavailable, "try later")}
	a := newTestAdapter(t, fake, nil)

	result := a.listServices(context.Background(), listServicesInput{ProjectID: "p", Region: "r"})

	rows, ok := result.([]envelope.ErrorRow)
	if !ok {
		t.Fatalf("result type = %T, want []envelope.ErrorRow", result)
	}
	if len(rows) != 1 || !strings.HasPrefix(rows[0].Error, "Error listing Cloud Run services: ") {
		t.Errorf("rows = %v", rows)
	}
}

func TestDeleteServiceTool_NotFoundNamesTarget(t *testing.T) {
	fake := &fakeServicesClient{getErr: notFoundErr()}
	a := newTestAdapter(t, fake, nil)

	result := a.deleteService(context.Background(), deleteServiceInput{
		ServiceName: "api", ProjectID: "acme-prod", Region: "europe-west1",
	})

	s, ok := result.(envelope.Status)
	if !ok {
		t.Fatalf("result type = %T, want envelope.Status", result)
	}
	if s.Status != envelope.StatusError {
		t.Errorf("Status = %q, want error", s.Status)
	}
	want := "Service 'api' not found in project 'acme-prod' region 'europe-west1'"
	if s.Message != want {
		t.Errorf("Message = %q, want %q", s.Message, want)
	}
}

func TestDeleteServiceTool_Success(t *testing.T) {
	fake := &fakeServicesClient{op: &fakeOperation{}}
	a := newTestAdapter(t, fake, nil)

	result := a.deleteService(context.Background(), deleteServiceInput{
		ServiceName: "api", ProjectID: "p", Region: "r",
	})

	s := result.(envelope.Status)
	if s.Status != envelope.StatusSuccess {
		t.Fatalf("Status = %q, want success", s.Status)
	}
	if s.Message != "Service 'api' successfully deleted" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestDeleteServiceTool_ProviderFailure(t *testing.T) {
	fake := &fakeServicesClient{deleteErr: status.Error(codes.Internal, "backend exploded")}
	a := newTestAdapter(t, fake, nil)

	result := a.deleteService(context.Background(), deleteServiceInput{
		ServiceName: "api", ProjectID: "p", Region: "r",
	})

	s := result.(envelope.Status)
	if s.Status != envelope.StatusError {
		t.Fatalf("Status = %q, want error", s.Status)
	}
	if !strings.HasPrefix(s.Message, "Error deleting service: ") {
		t.Errorf("Message = %q", s.Message)
	}
	if !strings.Contains(s.Message, "backend exploded") {
		t.Errorf("Message = %q does not carry the failure text", s.Message)
	}
}

func TestServiceLogsTool_DefaultLimit(t *testing.T) {
	logs := &fakeLogsClient{}
	a := newTestAdapter(t, nil, logs)

	result := a.serviceLogs(context.Background(), serviceLogsInput{
		ServiceName: "svc", ProjectID: "p", Region: "r",
	})

	if logs.req.GetPageSize() != DefaultLogLimit {
		t.Errorf("PageSize = %d, want %d", logs.req.GetPageSize(), DefaultLogLimit)
	}
	entries, ok := result.([]LogEntry)
	if !ok {
		t.Fatalf("result type = %T, want []LogEntry", result)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want empty", entries)
	}
}

func TestServiceLogsTool_ErrorConvention(t *testing.T) {
	logs := &fakeLogsClient{listErr: status.Error(codes.DeadlineExceeded, "timed out")}
	a := newTestAdapter(t, nil, logs)

	result := a.serviceLogs(context.Background(), serviceLogsInput{
		ServiceName: "svc", ProjectID: "p", Region: "r", Limit: 50,
	})

	rows, ok := result.([]envelope.ErrorRow)
	if !ok {
		t.Fatalf("result type = %T, want []envelope.ErrorRow", result)
	}
	if len(rows) != 1 || !strings.HasPrefix(rows[0].Error, "Error fetching logs: ") {
		t.Errorf("rows = %v", rows)
	}
}

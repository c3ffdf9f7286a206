// Package gcrun adapts Google Cloud Run to the gcptools call/result
// contract: service listing, existence-checked deletion that blocks until
// the provider confirms completion, and log retrieval through Cloud
// Logging.
package gcrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging/apiv2/loggingpb"
	"cloud.google.com/go/run/apiv2/runpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLogLimit caps log retrieval when the caller does not supply a
// limit. There is no enforced upper bound.
const DefaultLogLimit = 100

// ErrServiceNotFound reports that the deletion target does not exist, as
// opposed to an attempted deletion that failed.
var ErrServiceNotFound = errors.New("service not found")

// ServiceInfo is one row of a service listing: the short service name and
// its invocation URI, or "N/A" when the provider reports none.
type ServiceInfo struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// LogEntry is one row of a log query, newest first. Timestamp is RFC 3339
// text or absent; exactly one of TextPayload and JSONPayload is typically
// set, depending on what the service logged.
type LogEntry struct {
	Timestamp   string            `json:"timestamp,omitempty"`
	Severity    string            `json:"severity"`
	LogName     string            `json:"log_name"`
	TextPayload string            `json:"text_payload,omitempty"`
	JSONPayload map[string]any    `json:"json_payload,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// Adapter exposes Cloud Run operations.
type Adapter struct {
	dialServices ServicesDial
	dialLogs     LogsDial
}

// New creates an Adapter backed by the Cloud Run Admin and Cloud Logging
// APIs. Credentials are resolved from the ambient environment; opts can
// override endpoint or authentication.
func New(opts ...option.ClientOption) *Adapter {
	return &Adapter{
		dialServices: func(ctx context.Context) (ServicesClient, error) {
			return dialServicesAPI(ctx, opts...)
		},
		dialLogs: func(ctx context.Context) (LogsClient, error) {
			return dialLogsAPI(ctx, opts...)
		},
	}
}

// NewWithDial creates an Adapter using custom client dialers.
func NewWithDial(services ServicesDial, logs LogsDial) *Adapter {
	return &Adapter{dialServices: services, dialLogs: logs}
}

// ListServices enumerates the services in a project and region. Each row
// carries the last path segment of the service's fully-qualified name and
// its URI, substituting "N/A" when the provider reports none.
func (a *Adapter) ListServices(ctx context.Context, projectID, region string) ([]ServiceInfo, error) {
	client, err := a.dialServices(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	services, err := client.ListServices(ctx, &runpb.ListServicesRequest{
		Parent: locationPath(projectID, region),
	})
	if err != nil {
		return nil, err
	}

	out := make([]ServiceInfo, 0, len(services))
	for _, s := range services {
		uri := s.GetUri()
		if uri == "" {
			uri = "N/A"
		}
		out = append(out, ServiceInfo{Name: shortName(s.GetName()), URI: uri})
	}
	return out, nil
}

// DeleteService deletes a service and blocks until the provider confirms
// the deletion is durably finished. The target's existence is checked
// first: a missing service yields ErrServiceNotFound without a delete
// being issued.
func (a *Adapter) DeleteService(ctx context.Context, projectID, region, serviceName string) error {
	client, err := a.dialServices(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	name := servicePath(projectID, region, serviceName)
	if _, err := client.GetService(ctx, &runpb.GetServiceRequest{Name: name}); err != nil {
		if isNotFound(err) {
			return ErrServiceNotFound
		}
		return err
	}

	op, err := client.DeleteService(ctx, &runpb.DeleteServiceRequest{Name: name})
	if err != nil {
		return err
	}
	if _, err := op.Wait(ctx); err != nil {
		return err
	}
	return nil
}

// Logs fetches the latest log entries for a service, newest first, capped
// at limit. The query selects entries whose monitored resource marks them
// as Cloud Run revisions of the named service in the given region.
func (a *Adapter) Logs(ctx context.Context, projectID, region, serviceName string, limit int32) ([]LogEntry, error) {
	client, err := a.dialLogs(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	entries, err := client.ListLogEntries(ctx, &loggingpb.ListLogEntriesRequest{
		ResourceNames: []string{"projects/" + projectID},
		Filter:        logFilter(serviceName, region),
		OrderBy:       "timestamp desc",
		PageSize:      limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		entry := LogEntry{
			Severity:    e.GetSeverity().String(),
			LogName:     e.GetLogName(),
			TextPayload: e.GetTextPayload(),
			Labels:      e.GetLabels(),
		}
		if ts := e.GetTimestamp(); ts != nil {
			entry.Timestamp = ts.AsTime().Format(time.RFC3339Nano)
		}
		if jp := e.GetJsonPayload(); jp != nil {
			entry.JSONPayload = jp.AsMap()
		}
		out = append(out, entry)
	}
	return out, nil
}

func logFilter(serviceName, region string) string {
	return fmt.Sprintf(`resource.type="cloud_run_revision" AND resource.labels.service_name=%q AND resource.labels.location=%q`,
		serviceName, region)
}

func locationPath(projectID, region string) string {
	return "projects/" + projectID + "/locations/" + region
}

func servicePath(projectID, region, serviceName string) string {
	return locationPath(projectID, region) + "/services/" + serviceName
}

func shortName(fullName string) string {
	parts := strings.Split(fullName, "/")
	return parts[len(parts)-1]
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

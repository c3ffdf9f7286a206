package gcrun

import (
	"context"
	"errors"

	"github.com/jonwraymond/gcptools/envelope"
	"github.com/jonwraymond/gcptools/toolset"
)

type listServicesInput struct {
	ProjectID string `json:"project_id" jsonschema:"the Google Cloud project ID"`
	Region    string `json:"region" jsonschema:"the Cloud Run region, e.g. us-central1"`
}

type deleteServiceInput struct {
	ServiceName string `json:"service_name" jsonschema:"the name of the Cloud Run service"`
	ProjectID   string `json:"project_id" jsonschema:"the Google Cloud project ID"`
	Region      string `json:"region" jsonschema:"the Cloud Run region, e.g. us-central1"`
}

type serviceLogsInput struct {
	ServiceName string `json:"service_name" jsonschema:"the name of the Cloud Run service"`
	ProjectID   string `json:"project_id" jsonschema:"the Google Cloud project ID"`
	Region      string `json:"region" jsonschema:"the Cloud Run region, e.g. us-central1"`
	Limit       int32  `json:"limit,omitempty" jsonschema:"maximum number of log entries to return (default 100)"`
}

// Toolset binds the adapter's operations to their externally callable
// names. Mount it under the "cloudrun" prefix when composing with other
// groups.
func Toolset(a *Adapter) *toolset.Set {
	set := toolset.New("cloudrun")
	set.MustAdd(
		toolset.NewDef("list_cloud_run_services", "List all Cloud Run services in the specified project and region", a.listServices),
		toolset.NewDef("delete_cloud_run_service", "Delete a Cloud Run service from Google Cloud Run", a.deleteService),
		toolset.NewDef("get_cloud_run_service_logs", "Get the latest logs for a Cloud Run service (default 100 lines)", a.serviceLogs),
	)
	return set
}

func (a *Adapter) listServices(ctx context.Context, in listServicesInput) any {
	services, err := a.ListServices(ctx, in.ProjectID, in.Region)
	if err != nil {
		return envelope.ErrorRows("Error listing Cloud Run services", err)
	}
	if services == nil {
		services = []ServiceInfo{}
	}
	return services
}

func (a *Adapter) deleteService(ctx context.Context, in deleteServiceInput) any {
	err := a.DeleteService(ctx, in.ProjectID, in.Region, in.ServiceName)
	switch {
	case errors.Is(err, ErrServiceNotFound):
		return envelope.Err("Service '%s' not found in project '%s' region '%s'", in.ServiceName, in.ProjectID, in.Region)
	case err != nil:
		return envelope.Errf("Error deleting service", err)
	}
	return envelope.OK("Service '%s' successfully deleted", in.ServiceName)
}

func (a *Adapter) serviceLogs(ctx context.Context, in serviceLogsInput) any {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	logs, err := a.Logs(ctx, in.ProjectID, in.Region, in.ServiceName, limit)
	if err != nil {
		return envelope.ErrorRows("Error fetching logs", err)
	}
	if logs == nil {
		logs = []LogEntry{}
	}
	return logs
}

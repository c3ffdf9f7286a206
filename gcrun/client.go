package gcrun

import (
	"context"
	"errors"

	logging "cloud.google.com/go/logging/apiv2"
	"cloud.google.com/go/logging/apiv2/loggingpb"
	run "cloud.google.com/go/run/apiv2"
	"cloud.google.com/go/run/apiv2/runpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Operation is a provider-side deletion in progress. Wait blocks until the
// provider confirms completion.
type Operation interface {
	Wait(ctx context.Context) (*runpb.Service, error)
}

// ServicesClient is the slice of the Cloud Run Admin API the adapter uses.
type ServicesClient interface {
	ListServices(ctx context.Context, req *runpb.ListServicesRequest) ([]*runpb.Service, error)
	GetService(ctx context.Context, req *runpb.GetServiceRequest) (*runpb.Service, error)
	DeleteService(ctx context.Context, req *runpb.DeleteServiceRequest) (Operation, error)
	Close() error
}

// LogsClient is the slice of the Cloud Logging API the adapter uses.
// Implementations return at most PageSize entries when the request sets one.
type LogsClient interface {
	ListLogEntries(ctx context.Context, req *loggingpb.ListLogEntriesRequest) ([]*loggingpb.LogEntry, error)
	Close() error
}

// ServicesDial and LogsDial open short-lived clients for one operation.
// Every adapter call dials its own client and closes it before returning.
type (
	ServicesDial func(ctx context.Context) (ServicesClient, error)
	LogsDial     func(ctx context.Context) (LogsClient, error)
)

type servicesAPIClient struct {
	c *run.ServicesClient
}

func dialServicesAPI(ctx context.Context, opts ...option.ClientOption) (ServicesClient, error) {
	c, err := run.NewServicesClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &servicesAPIClient{c: c}, nil
}

func (a *servicesAPIClient) ListServices(ctx context.Context, req *runpb.ListServicesRequest) ([]*runpb.Service, error) {
	it := a.c.ListServices(ctx, req)
	var out []*runpb.Service
	for {
		s, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
}

func (a *servicesAPIClient) GetService(ctx context.Context, req *runpb.GetServiceRequest) (*runpb.Service, error) {
	return a.c.GetService(ctx, req)
}

func (a *servicesAPIClient) DeleteService(ctx context.Context, req *runpb.DeleteServiceRequest) (Operation, error) {
	op, err := a.c.DeleteService(ctx, req)
	if err != nil {
		return nil, err
	}
	return sdkOperation{op: op}, nil
}

// sdkOperation adapts the SDK's variadic Wait to the Operation interface.
type sdkOperation struct {
	op *run.DeleteServiceOperation
}

func (o sdkOperation) Wait(ctx context.Context) (*runpb.Service, error) {
	return o.op.Wait(ctx)
}

func (a *servicesAPIClient) Close() error {
	return a.c.Close()
}

type logsAPIClient struct {
	c *logging.Client
}

func dialLogsAPI(ctx context.Context, opts ...option.ClientOption) (LogsClient, error) {
	c, err := logging.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &logsAPIClient{c: c}, nil
}

func (a *logsAPIClient) ListLogEntries(ctx context.Context, req *loggingpb.ListLogEntriesRequest) ([]*loggingpb.LogEntry, error) {
	it := a.c.ListLogEntries(ctx, req)
	limit := int(req.GetPageSize())
	var out []*loggingpb.LogEntry
	for {
		if limit > 0 && len(out) >= limit {
			return out, nil
		}
		e, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func (a *logsAPIClient) Close() error {
	return a.c.Close()
}

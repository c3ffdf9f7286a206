// Package gcsecrets adapts Google Cloud Secret Manager to the gcptools
// call/result contract: list, read-latest, upsert, and delete operations
// over secrets, each a single stateless provider round trip.
package gcsecrets

import (
	"context"
	"fmt"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Adapter exposes Secret Manager operations.
type Adapter struct {
	dial Dial
}

// New creates an Adapter backed by the Secret Manager API. Credentials are
// resolved from the ambient environment; opts can override endpoint or
// authentication.
func New(opts ...option.ClientOption) *Adapter {
	return &Adapter{dial: func(ctx context.Context) (Client, error) {
		return dialAPI(ctx, opts...)
	}}
}

// NewWithDial creates an Adapter using a custom client dialer.
func NewWithDial(dial Dial) *Adapter {
	return &Adapter{dial: dial}
}

// List returns the fully-qualified names of the project's secrets. A
// non-empty prefix narrows the listing to names starting with it, applied
// as a provider-side filter. Ordering is provider-defined.
func (a *Adapter) List(ctx context.Context, projectID, prefix string) ([]string, error) {
	client, err := a.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	filter := ""
	if prefix != "" {
		filter = fmt.Sprintf("name:%s*", prefix)
	}
	secrets, err := client.ListSecrets(ctx, &secretmanagerpb.ListSecretsRequest{
		Parent: projectPath(projectID),
		Filter: filter,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(secrets))
	for _, s := range secrets {
		names = append(names, s.GetName())
	}
	return names, nil
}

// GetValue resolves the secret's latest version and returns its payload as
// text. A missing secret or version surfaces as the provider's not-found
// failure.
func (a *Adapter) GetValue(ctx context.Context, projectID, secretName string) (string, error) {
	client, err := a.dial(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretPath(projectID, secretName) + "/versions/latest",
	})
	if err != nil {
		return "", err
	}
	return string(resp.GetPayload().GetData()), nil
}

// AddOrUpdate appends a new version carrying secretValue, creating the
// secret container first (with automatic replication) when it does not
// exist yet. Only a not-found failure on the existence check triggers
// creation; any other failure is returned. Returns the new version's
// fully-qualified name.
//
// The check-then-create sequence is not atomic: a concurrent deletion
// between the check and the create can make the create race with another
// creator.
func (a *Adapter) AddOrUpdate(ctx context.Context, projectID, secretName, secretValue string) (string, error) {
	client, err := a.dial(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	path := secretPath(projectID, secretName)
	if _, err := client.GetSecret(ctx, &secretmanagerpb.GetSecretRequest{Name: path}); err != nil {
		if !isNotFound(err) {
			return "", err
		}
		_, err := client.CreateSecret(ctx, &secretmanagerpb.CreateSecretRequest{
			Parent:   projectPath(projectID),
			SecretId: secretName,
			Secret: &secretmanagerpb.Secret{
				Replication: &secretmanagerpb.Replication{
					Replication: &secretmanagerpb.Replication_Automatic_{
						Automatic: &secretmanagerpb.Replication_Automatic{},
					},
				},
			},
		})
		if err != nil {
			return "", err
		}
	}

	version, err := client.AddSecretVersion(ctx, &secretmanagerpb.AddSecretVersionRequest{
		Parent:  path,
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(secretValue)},
	})
	if err != nil {
		return "", err
	}
	return version.GetName(), nil
}

// Delete removes the secret and all its versions. There is no existence
// pre-check; a missing secret surfaces as the provider's own failure.
func (a *Adapter) Delete(ctx context.Context, projectID, secretName string) error {
	client, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.DeleteSecret(ctx, &secretmanagerpb.DeleteSecretRequest{
		Name: secretPath(projectID, secretName),
	})
}

func projectPath(projectID string) string {
	return "projects/" + projectID
}

func secretPath(projectID, secretName string) string {
	return projectPath(projectID) + "/secrets/" + secretName
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

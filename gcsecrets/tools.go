package gcsecrets

import (
	"context"

	"github.com/jonwraymond/gcptools/envelope"
	"github.com/jonwraymond/gcptools/toolset"
)

type listSecretsInput struct {
	ProjectID string `json:"project_id" jsonschema:"the Google Cloud project ID"`
	Prefix    string `json:"prefix,omitempty" jsonschema:"optional name prefix to filter secrets by"`
}

type deleteSecretInput struct {
	SecretName string `json:"secret_name" jsonschema:"the name of the secret"`
	ProjectID  string `json:"project_id" jsonschema:"the Google Cloud project ID"`
}

type addSecretInput struct {
	SecretName  string `json:"secret_name" jsonschema:"the name of the secret"`
	ProjectID   string `json:"project_id" jsonschema:"the Google Cloud project ID"`
	SecretValue string `json:"secret_value" jsonschema:"the secret value to store"`
}

type getSecretValueInput struct {
	SecretName string `json:"secret_name" jsonschema:"the name of the secret"`
	ProjectID  string `json:"project_id" jsonschema:"the Google Cloud project ID"`
}

// Toolset binds the adapter's operations to their externally callable
// names. Mount it under the "secret" prefix when composing with other
// groups.
func Toolset(a *Adapter) *toolset.Set {
	set := toolset.New("secret")
	set.MustAdd(
		toolset.NewDef("list_secrets", "List all secrets in the project", a.listSecrets),
		toolset.NewDef("delete_secret", "Delete a secret from Google Cloud Secret Manager", a.deleteSecret),
		toolset.NewDef("add_secret", "Add a new secret or a new version to an existing secret in Google Cloud Secret Manager", a.addSecret),
		toolset.NewDef("get_secret_value", "Get a secret value from Google Cloud Secret Manager", a.getSecretValue),
	)
	return set
}

func (a *Adapter) listSecrets(ctx context.Context, in listSecretsInput) any {
	names, err := a.List(ctx, in.ProjectID, in.Prefix)
	if err != nil {
		return envelope.ErrorRows("Error listing secrets", err)
	}
	if names == nil {
		names = []string{}
	}
	return names
}

func (a *Adapter) deleteSecret(ctx context.Context, in deleteSecretInput) any {
	if err := a.Delete(ctx, in.ProjectID, in.SecretName); err != nil {
		return envelope.Errf("Error deleting secret", err)
	}
	return envelope.OK("Secret '%s' successfully deleted from project '%s'", in.SecretName, in.ProjectID)
}

func (a *Adapter) addSecret(ctx context.Context, in addSecretInput) any {
	version, err := a.AddOrUpdate(ctx, in.ProjectID, in.SecretName, in.SecretValue)
	if err != nil {
		return envelope.Errf("Error adding secret", err)
	}
	return envelope.OK("Secret '%s' added/updated in project '%s'. New version: %s", in.SecretName, in.ProjectID, version)
}

func (a *Adapter) getSecretValue(ctx context.Context, in getSecretValueInput) any {
	value, err := a.GetValue(ctx, in.ProjectID, in.SecretName)
	if err != nil {
		return envelope.ValueErr("Error retrieving secret", err)
	}
	return envelope.ValueOK(value)
}

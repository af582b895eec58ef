// Package credentials turns the configured service-account source into
// Google client options.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"evseed/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretSource reads a secret payload by resource name.
type SecretSource interface {
	AccessSecret(ctx context.Context, name string) ([]byte, error)
	Close() error
}

type secretManagerSource struct {
	client *secretmanager.Client
}

// NewSecretManagerSource creates a SecretSource backed by Secret Manager.
// It authenticates with Application Default Credentials.
func NewSecretManagerSource(ctx context.Context) (SecretSource, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	return &secretManagerSource{client: client}, nil
}

func (s *secretManagerSource) AccessSecret(ctx context.Context, name string) ([]byte, error) {
	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access secret version: %w", err)
	}
	return result.Payload.Data, nil
}

func (s *secretManagerSource) Close() error {
	return s.client.Close()
}

// ClientOptions resolves how the Firestore client authenticates:
// emulator first, then a Secret Manager secret, then the credential file.
func ClientOptions(ctx context.Context, cfg *config.Config) ([]option.ClientOption, error) {
	if cfg.UsesEmulator() {
		return []option.ClientOption{option.WithoutAuthentication()}, nil
	}

	if cfg.CredentialsSecret != "" {
		src, err := NewSecretManagerSource(ctx)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return FromSecret(ctx, src, cfg.GCPProjectID, cfg.CredentialsSecret)
	}

	return FromFile(cfg.CredentialsFile)
}

// FromFile returns options reading the service-account key at path.
func FromFile(path string) ([]option.ClientOption, error) {
	if path == "" {
		return nil, errors.New("credentials file path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("credentials file %s: %w", path, err)
	}
	return []option.ClientOption{option.WithCredentialsFile(path)}, nil
}

// FromSecret reads the service-account key JSON from secret. secret may be a
// bare secret id (latest version in projectID is used) or a full resource name.
func FromSecret(ctx context.Context, src SecretSource, projectID, secret string) ([]option.ClientOption, error) {
	name := SecretVersionName(projectID, secret)
	data, err := src.AccessSecret(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("secret %s is empty", name)
	}
	return []option.ClientOption{option.WithCredentialsJSON(data)}, nil
}

// SecretVersionName expands a secret id into a version resource name.
func SecretVersionName(projectID, secret string) string {
	if strings.HasPrefix(secret, "projects/") {
		if strings.Contains(secret, "/versions/") {
			return secret
		}
		return secret + "/versions/latest"
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secret)
}

package gcpiam

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/option"
)

//go:generate moq -out client_moq.go . Client
type Client interface {
	// ListKeys returns every key of the service account, user and system managed
	ListKeys(ctx context.Context, projectID string, iamAccount string) ([]*iam.ServiceAccountKey, error)
	// CreateKey creates a user managed key. The response carries the base64
	// encoded private key material in PrivateKeyData; it is returned exactly once.
	CreateKey(ctx context.Context, projectID string, iamAccount string, privateKeyType string, keyAlgorithm string) (*iam.ServiceAccountKey, error)
	// DeleteKey deletes a single key. keyID may be the bare key ID or a full
	// key resource name.
	DeleteKey(ctx context.Context, projectID string, iamAccount string, keyID string) error
}

var _ Client = &iamClient{}

type iamClient struct {
	config  *IAMConfig
	service *iam.Service
}

func NewClient(ctx context.Context, config *IAMConfig) (Client, error) {
	opts := []option.ClientOption{}

	if config.Credentials != "" {
		credentials, err := google.CredentialsFromJSON(ctx, []byte(config.Credentials), iam.CloudPlatformScope)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse service account credentials")
		}
		opts = append(opts, option.WithCredentials(credentials))
	}

	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
		// an alternative endpoint without credentials is an unauthenticated
		// test endpoint, credentials still win when both are configured
		if config.Credentials == "" {
			opts = append(opts, option.WithoutAuthentication())
		}
	}

	service, err := iam.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create IAM service")
	}

	return &iamClient{
		config:  config,
		service: service,
	}, nil
}

func (c *iamClient) ListKeys(ctx context.Context, projectID string, iamAccount string) ([]*iam.ServiceAccountKey, error) {
	response, err := c.service.Projects.ServiceAccounts.Keys.
		List(ServiceAccountResourceName(projectID, iamAccount)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return response.Keys, nil
}

func (c *iamClient) CreateKey(ctx context.Context, projectID string, iamAccount string, privateKeyType string, keyAlgorithm string) (*iam.ServiceAccountKey, error) {
	request := &iam.CreateServiceAccountKeyRequest{
		PrivateKeyType: privateKeyType,
		KeyAlgorithm:   keyAlgorithm,
	}
	return c.service.Projects.ServiceAccounts.Keys.
		Create(ServiceAccountResourceName(projectID, iamAccount), request).
		Context(ctx).
		Do()
}

func (c *iamClient) DeleteKey(ctx context.Context, projectID string, iamAccount string, keyID string) error {
	_, err := c.service.Projects.ServiceAccounts.Keys.
		Delete(KeyResourceName(projectID, iamAccount, keyID)).
		Context(ctx).
		Do()
	return err
}

// ServiceAccountResourceName builds the IAM resource name of a service account.
func ServiceAccountResourceName(projectID string, iamAccount string) string {
	return fmt.Sprintf("projects/%s/serviceAccounts/%s", projectID, iamAccount)
}

// KeyResourceName builds the IAM resource name of a key. A keyID that already
// is a full resource name is passed through unchanged.
func KeyResourceName(projectID string, iamAccount string, keyID string) string {
	if strings.Contains(keyID, "/") {
		return keyID
	}
	return fmt.Sprintf("%s/keys/%s", ServiceAccountResourceName(projectID, iamAccount), keyID)
}

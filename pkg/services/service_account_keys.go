package services

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/golang/glog"

	"github.com/google/keyrotator/pkg/api"
	"github.com/google/keyrotator/pkg/api/presenters"
	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/shared"
)

// NewKey is the result of creating a key. PrivateKeyData holds the decoded
// private key material; the IAM API returns it exactly once, on creation.
type NewKey struct {
	Key            api.ServiceAccountKey
	PrivateKeyData []byte
}

//go:generate moq -out service_account_keys_moq.go . KeyService
type KeyService interface {
	ListKeys(ctx context.Context, projectID string, iamAccount string) (api.ServiceAccountKeyList, *errors.ServiceError)
	CreateKey(ctx context.Context, projectID string, iamAccount string, privateKeyType string, keyAlgorithm string) (*NewKey, *errors.ServiceError)
	DeleteKey(ctx context.Context, projectID string, iamAccount string, keyID string) *errors.ServiceError
	// CleanupKeys deletes every user managed key older than maxAge, except keys
	// whose IDs appear in excludeKeyIDs. It returns the keys it deleted; on
	// failure the returned slice covers the deletions performed before the error.
	CleanupKeys(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, excludeKeyIDs ...string) ([]api.ServiceAccountKey, *errors.ServiceError)
	// RotateKey creates a replacement key and then cleans up keys older than
	// maxAge. The new key is never a deletion candidate.
	RotateKey(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, privateKeyType string, keyAlgorithm string) (*NewKey, []api.ServiceAccountKey, *errors.ServiceError)
}

var _ KeyService = &keyService{}

type keyService struct {
	client gcpiam.Client
	now    func() time.Time
}

func NewKeyService(client gcpiam.Client) KeyService {
	return &keyService{
		client: client,
		now:    time.Now,
	}
}

func (s *keyService) ListKeys(ctx context.Context, projectID string, iamAccount string) (api.ServiceAccountKeyList, *errors.ServiceError) {
	list := api.ServiceAccountKeyList{
		Kind:  "ServiceAccountKeyList",
		Items: []api.ServiceAccountKey{},
	}

	keys, err := s.client.ListKeys(ctx, projectID, iamAccount)
	if err != nil {
		return list, errors.NewErrorFromGoogleAPI(err, "failed to list keys for service account %s", iamAccount)
	}

	for _, key := range keys {
		converted, presentErr := presenters.PresentServiceAccountKey(key)
		if presentErr != nil {
			glog.Warningf("Skipping key: %s", presentErr.Error())
			continue
		}
		list.Items = append(list.Items, converted)
	}

	return list, nil
}

func (s *keyService) CreateKey(ctx context.Context, projectID string, iamAccount string, privateKeyType string, keyAlgorithm string) (*NewKey, *errors.ServiceError) {
	if privateKeyType == "" {
		privateKeyType = api.DefaultPrivateKeyType
	}
	if keyAlgorithm == "" {
		keyAlgorithm = api.DefaultKeyAlgorithm
	}
	if !shared.Contains([]string{api.PrivateKeyTypeGoogleCredentialsFile, api.PrivateKeyTypePKCS12File}, privateKeyType) {
		return nil, errors.Validation("unsupported key type %q", privateKeyType)
	}
	if !shared.Contains([]string{api.KeyAlgorithmRSA1024, api.KeyAlgorithmRSA2048}, keyAlgorithm) {
		return nil, errors.Validation("unsupported key algorithm %q", keyAlgorithm)
	}

	key, err := s.client.CreateKey(ctx, projectID, iamAccount, privateKeyType, keyAlgorithm)
	if err != nil {
		return nil, errors.NewErrorFromGoogleAPI(err, "failed to create key for service account %s", iamAccount)
	}

	privateKeyData, decodeErr := base64.StdEncoding.DecodeString(key.PrivateKeyData)
	if decodeErr != nil {
		return nil, errors.FailedToCreateKey("key %s has malformed private key data: %s", key.Name, decodeErr.Error())
	}

	converted, presentErr := presenters.PresentServiceAccountKey(key)
	if presentErr != nil {
		return nil, presentErr
	}

	return &NewKey{
		Key:            converted,
		PrivateKeyData: privateKeyData,
	}, nil
}

func (s *keyService) DeleteKey(ctx context.Context, projectID string, iamAccount string, keyID string) *errors.ServiceError {
	if err := s.client.DeleteKey(ctx, projectID, iamAccount, keyID); err != nil {
		return errors.NewErrorFromGoogleAPI(err, "failed to delete key %s of service account %s", keyID, iamAccount)
	}
	return nil
}

func (s *keyService) CleanupKeys(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, excludeKeyIDs ...string) ([]api.ServiceAccountKey, *errors.ServiceError) {
	if maxAge < 0 {
		return nil, errors.Validation("key max age must not be negative")
	}

	list, serviceErr := s.ListKeys(ctx, projectID, iamAccount)
	if serviceErr != nil {
		return nil, serviceErr
	}

	deleted := []api.ServiceAccountKey{}
	for _, key := range KeysOlderThan(list.Items, maxAge, s.now()) {
		if shared.Contains(excludeKeyIDs, key.ID) {
			continue
		}
		if serviceErr := s.DeleteKey(ctx, projectID, iamAccount, key.ID); serviceErr != nil {
			return deleted, serviceErr
		}
		glog.Infof("Deleted key %s of service account %s, created %s", key.ID, iamAccount, key.ValidAfterTime.Format(time.RFC3339))
		deleted = append(deleted, key)
	}

	return deleted, nil
}

func (s *keyService) RotateKey(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, privateKeyType string, keyAlgorithm string) (*NewKey, []api.ServiceAccountKey, *errors.ServiceError) {
	newKey, serviceErr := s.CreateKey(ctx, projectID, iamAccount, privateKeyType, keyAlgorithm)
	if serviceErr != nil {
		return nil, nil, serviceErr
	}

	deleted, serviceErr := s.CleanupKeys(ctx, projectID, iamAccount, maxAge, newKey.Key.ID)
	if serviceErr != nil {
		// the replacement key exists at this point, hand it to the caller
		return newKey, deleted, serviceErr
	}

	return newKey, deleted, nil
}

// KeysOlderThan returns the user managed keys created more than maxAge before
// now. System managed keys are rotated by Google and never eligible.
func KeysOlderThan(keys []api.ServiceAccountKey, maxAge time.Duration, now time.Time) []api.ServiceAccountKey {
	older := []api.ServiceAccountKey{}
	for _, key := range keys {
		if !key.IsUserManaged() {
			continue
		}
		if key.OlderThan(maxAge, now) {
			older = append(older, key)
		}
	}
	return older
}

package presenters

import (
	"strings"
	"time"

	"google.golang.org/api/iam/v1"

	"github.com/google/keyrotator/pkg/api"
	"github.com/google/keyrotator/pkg/errors"
)

// PresentServiceAccountKey converts a key resource returned by the IAM admin API
// into its presentable form. The resource timestamps are RFC 3339 strings; a key
// whose ValidAfterTime cannot be parsed is rejected so callers never compute an
// age from a zero time.
func PresentServiceAccountKey(key *iam.ServiceAccountKey) (api.ServiceAccountKey, *errors.ServiceError) {
	validAfter, err := time.Parse(time.RFC3339, key.ValidAfterTime)
	if err != nil {
		return api.ServiceAccountKey{}, errors.GeneralError("key %s has malformed validAfterTime %q: %s", key.Name, key.ValidAfterTime, err.Error())
	}

	// ValidBeforeTime is informational only, ignore a malformed value
	validBefore, _ := time.Parse(time.RFC3339, key.ValidBeforeTime)

	return api.ServiceAccountKey{
		ID:              KeyIDFromResourceName(key.Name),
		Name:            key.Name,
		KeyType:         key.KeyType,
		KeyAlgorithm:    key.KeyAlgorithm,
		KeyOrigin:       key.KeyOrigin,
		Disabled:        key.Disabled,
		ValidAfterTime:  validAfter,
		ValidBeforeTime: validBefore,
	}, nil
}

// KeyIDFromResourceName extracts the key ID from a full key resource name of the
// form projects/{project}/serviceAccounts/{account}/keys/{id}.
func KeyIDFromResourceName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

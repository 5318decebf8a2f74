package api

import (
	"time"
)

// Private key types accepted by the IAM admin API when creating a key.
const (
	PrivateKeyTypeGoogleCredentialsFile = "TYPE_GOOGLE_CREDENTIALS_FILE"
	PrivateKeyTypePKCS12File            = "TYPE_PKCS12_FILE"
)

// Key algorithms accepted by the IAM admin API when creating a key.
const (
	KeyAlgorithmRSA1024 = "KEY_ALG_RSA_1024"
	KeyAlgorithmRSA2048 = "KEY_ALG_RSA_2048"
)

// Managed types reported by the IAM admin API on listed keys. Only user managed
// keys can be created or deleted through the API.
const (
	KeyTypeUserManaged   = "USER_MANAGED"
	KeyTypeSystemManaged = "SYSTEM_MANAGED"
)

// DefaultPrivateKeyType and DefaultKeyAlgorithm are applied by the create
// operation when the caller does not specify them.
const (
	DefaultPrivateKeyType = PrivateKeyTypeGoogleCredentialsFile
	DefaultKeyAlgorithm   = KeyAlgorithmRSA2048
)

type ServiceAccountKey struct {
	// ID is the final segment of the key resource name
	ID   string `json:"id"`
	Name string `json:"name"`
	// KeyType is USER_MANAGED or SYSTEM_MANAGED
	KeyType         string    `json:"key_type"`
	KeyAlgorithm    string    `json:"key_algorithm,omitempty"`
	KeyOrigin       string    `json:"key_origin,omitempty"`
	Disabled        bool      `json:"disabled,omitempty"`
	ValidAfterTime  time.Time `json:"valid_after_time"`
	ValidBeforeTime time.Time `json:"valid_before_time"`
}

type ServiceAccountKeyList struct {
	Kind  string              `json:"kind"`
	Items []ServiceAccountKey `json:"items"`
}

type ServiceAccountKeyIndex map[string]ServiceAccountKey

func (l ServiceAccountKeyList) Index() ServiceAccountKeyIndex {
	index := ServiceAccountKeyIndex{}
	for _, o := range l.Items {
		index[o.ID] = o
	}
	return index
}

func (k ServiceAccountKey) IsUserManaged() bool {
	return k.KeyType == KeyTypeUserManaged
}

// Age returns how long the key has existed at the given instant. Keys carry
// their creation time in ValidAfterTime.
func (k ServiceAccountKey) Age(now time.Time) time.Duration {
	return now.Sub(k.ValidAfterTime)
}

// OlderThan reports whether the key was created more than maxAge before now.
func (k ServiceAccountKey) OlderThan(maxAge time.Duration, now time.Time) bool {
	return k.Age(now) > maxAge
}

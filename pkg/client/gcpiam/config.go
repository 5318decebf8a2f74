package gcpiam

import (
	"github.com/spf13/pflag"

	"github.com/google/keyrotator/pkg/shared"
)

type IAMConfig struct {
	// CredentialsFile points at a service account credentials JSON file. When
	// empty the client falls back to application default credentials.
	CredentialsFile string `json:"credentials_file"`
	Credentials     string `json:"-"`
	// Endpoint overrides the IAM admin API base URL, useful for tests
	Endpoint string `json:"endpoint"`
}

func NewIAMConfig() *IAMConfig {
	return &IAMConfig{
		CredentialsFile: "",
		Endpoint:        "",
	}
}

func (c *IAMConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.CredentialsFile, "credentials-file", c.CredentialsFile, "File containing service account credentials JSON used to authenticate against the IAM API. If not provided, application default credentials are used")
	fs.StringVar(&c.Endpoint, "iam-endpoint", c.Endpoint, "Base URL of the IAM admin API, requests are sent unauthenticated unless credentials are also configured. Intended for tests, leave empty for the Google production endpoint")
}

func (c *IAMConfig) ReadFiles() error {
	if c.CredentialsFile == "" {
		return nil
	}
	return shared.ReadFileValueString(c.CredentialsFile, &c.Credentials)
}

package config

import (
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/shared"
)

type RotationPolicy struct {
	IamAccount    string `yaml:"iam_account"`
	KeyMaxAgeDays int    `yaml:"key_max_age_days"`
}

func (p RotationPolicy) MaxAge() time.Duration {
	return time.Duration(p.KeyMaxAgeDays) * 24 * time.Hour
}

type RotationPolicyList []RotationPolicy

func (policyList RotationPolicyList) GetByAccount(iamAccount string) (RotationPolicy, bool) {
	for _, policy := range policyList {
		if iamAccount == policy.IamAccount {
			return policy, true
		}
	}

	return RotationPolicy{}, false
}

type RotationPolicyConfiguration struct {
	Policies RotationPolicyList `yaml:"policies"`
}

type RotationPolicyConfig struct {
	RotationPolicies RotationPolicyConfiguration
	PolicyConfigFile string
}

func NewRotationPolicyConfig() *RotationPolicyConfig {
	return &RotationPolicyConfig{
		PolicyConfigFile: "",
	}
}

func (c *RotationPolicyConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.PolicyConfigFile, "policy-file", c.PolicyConfigFile, "Rotation policy configuration file listing service accounts and their maximum key age in days")
}

func (c *RotationPolicyConfig) ReadFiles() error {
	if c.PolicyConfigFile == "" {
		return nil
	}
	if err := readFileRotationPolicyConfig(c.PolicyConfigFile, &c.RotationPolicies); err != nil {
		return err
	}
	return c.Validate()
}

func (c *RotationPolicyConfig) Validate() error {
	for _, policy := range c.RotationPolicies.Policies {
		if policy.IamAccount == "" {
			return errors.Validation("policy file %s contains an entry without iam_account", c.PolicyConfigFile)
		}
		if policy.KeyMaxAgeDays < 0 {
			return errors.Validation("policy for %s has negative key_max_age_days", policy.IamAccount)
		}
	}
	return nil
}

// Read the contents of file into the rotation policy config
func readFileRotationPolicyConfig(file string, val *RotationPolicyConfiguration) error {
	fileContents, err := shared.ReadFile(file)
	if err != nil {
		return err
	}

	return yaml.UnmarshalStrict([]byte(fileContents), val)
}

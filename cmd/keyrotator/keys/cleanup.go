package keys

import (
	"context"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/config"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/flags"
	"github.com/google/keyrotator/pkg/services"
)

// NewCleanupCommand command for the age based bulk deletion of keys. It deletes
// every user managed key older than the maximum age, either of a single service
// account or of every account listed in a rotation policy file.
func NewCleanupCommand() *cobra.Command {
	iamConfig := gcpiam.NewIAMConfig()
	policyConfig := config.NewRotationPolicyConfig()

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete keys older than the maximum age",
		Long:  "Delete keys older than the maximum age. Keys younger than --key-max-age days are kept; system managed keys are never deleted.",
		Run: func(cmd *cobra.Command, args []string) {
			runCleanup(cmd, iamConfig, policyConfig)
		},
	}
	iamConfig.AddFlags(cmd.PersistentFlags())
	policyConfig.AddFlags(cmd.Flags())

	cmd.Flags().String(FlagProjectID, "", projectIDDescription)
	cmd.Flags().String(FlagIAMAccount, "", iamAccountDescription)
	cmd.Flags().Int(FlagKeyMaxAge, 0, "The maximum age of a key, in days, to exclude from deletion. Older keys are deleted")
	cmd.Flags().Bool(FlagDryRun, false, "Only report the keys that would be deleted")

	return cmd
}

func runCleanup(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig, policyConfig *config.RotationPolicyConfig) {
	projectID := flags.MustGetDefinedString(FlagProjectID, cmd.Flags())
	dryRun := flags.MustGetBool(FlagDryRun, cmd.Flags())

	keyService := newKeyService(cmd, iamConfig)

	if policyConfig.PolicyConfigFile != "" {
		if err := policyConfig.ReadFiles(); err != nil {
			glog.Fatalf("Unable to read rotation policy file: %s", err.Error())
		}

		failed := cleanupPolicies(cmd.Context(), keyService, projectID, policyConfig.RotationPolicies.Policies, dryRun)
		if failed > 0 {
			glog.Errorf("Cleanup failed for %d service account(s)", failed)
			glog.Flush()
			os.Exit(errors.ExitRemoteFailure)
		}
		return
	}

	iamAccount := flags.MustGetDefinedString(FlagIAMAccount, cmd.Flags())
	if !cmd.Flags().Changed(FlagKeyMaxAge) {
		exitOnError(errors.Validation("flag %s is required when no policy file is given", FlagKeyMaxAge))
	}
	maxAge := time.Duration(flags.MustGetInt(FlagKeyMaxAge, cmd.Flags())) * 24 * time.Hour

	exitOnError(cleanupAccount(cmd.Context(), keyService, projectID, iamAccount, maxAge, dryRun))
}

// cleanupPolicies runs the cleanup for every account in the policy list. A
// failing account does not stop the remaining accounts; the number of failed
// accounts is returned.
func cleanupPolicies(ctx context.Context, keyService services.KeyService, projectID string, policies config.RotationPolicyList, dryRun bool) int {
	failed := 0
	for _, policy := range policies {
		if serviceErr := cleanupAccount(ctx, keyService, projectID, policy.IamAccount, policy.MaxAge(), dryRun); serviceErr != nil {
			glog.Errorf("Cleanup of service account %s failed: %s", policy.IamAccount, serviceErr.Error())
			failed++
		}
	}
	return failed
}

func cleanupAccount(ctx context.Context, keyService services.KeyService, projectID string, iamAccount string, maxAge time.Duration, dryRun bool) *errors.ServiceError {
	// validated here as well so a dry run rejects the same input a real run would
	if maxAge < 0 {
		return errors.Validation("key max age must not be negative")
	}

	if dryRun {
		list, serviceErr := keyService.ListKeys(ctx, projectID, iamAccount)
		if serviceErr != nil {
			return serviceErr
		}
		for _, key := range services.KeysOlderThan(list.Items, maxAge, time.Now()) {
			glog.Infof("Would delete key %s of service account %s, created %s", key.ID, iamAccount, key.ValidAfterTime.Format(time.RFC3339))
		}
		return nil
	}

	deleted, serviceErr := keyService.CleanupKeys(ctx, projectID, iamAccount, maxAge)
	glog.Infof("Deleted %d key(s) of service account %s", len(deleted), iamAccount)
	return serviceErr
}

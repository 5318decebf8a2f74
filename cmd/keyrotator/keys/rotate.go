package keys

import (
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/flags"
)

// NewRotateCommand command for rotating keys: create a replacement key, then
// delete the user managed keys older than the maximum age.
func NewRotateCommand() *cobra.Command {
	iamConfig := gcpiam.NewIAMConfig()

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Create a replacement key and delete keys older than the maximum age",
		Long:  "Create a replacement key and delete keys older than the maximum age. The new key is never a deletion candidate.",
		Run: func(cmd *cobra.Command, args []string) {
			runRotate(cmd, iamConfig)
		},
	}
	iamConfig.AddFlags(cmd.PersistentFlags())

	cmd.Flags().String(FlagProjectID, "", projectIDDescription)
	cmd.Flags().String(FlagIAMAccount, "", iamAccountDescription)
	cmd.Flags().Int(FlagKeyMaxAge, 0, "The maximum age of a key, in days, to exclude from deletion. Older keys are deleted")
	cmd.Flags().String(FlagKeyType, "", "The type of private key to create. Defaults to TYPE_GOOGLE_CREDENTIALS_FILE")
	cmd.Flags().String(FlagKeyAlgorithm, "", "The algorithm of the key to create. Defaults to KEY_ALG_RSA_2048")
	cmd.Flags().String(FlagOutputFile, "", "The file name the new private key is written to")

	return cmd
}

func runRotate(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig) {
	projectID := flags.MustGetDefinedString(FlagProjectID, cmd.Flags())
	iamAccount := flags.MustGetDefinedString(FlagIAMAccount, cmd.Flags())
	keyType := flags.MustGetString(FlagKeyType, cmd.Flags())
	keyAlgorithm := flags.MustGetString(FlagKeyAlgorithm, cmd.Flags())
	outputFile := flags.MustGetString(FlagOutputFile, cmd.Flags())
	if !cmd.Flags().Changed(FlagKeyMaxAge) {
		exitOnError(errors.Validation("flag %s is required", FlagKeyMaxAge))
	}
	maxAge := time.Duration(flags.MustGetInt(FlagKeyMaxAge, cmd.Flags())) * 24 * time.Hour

	keyService := newKeyService(cmd, iamConfig)

	newKey, deleted, serviceErr := keyService.RotateKey(cmd.Context(), projectID, iamAccount, maxAge, keyType, keyAlgorithm)
	if newKey != nil {
		glog.Infof("Created key %s for service account %s", newKey.Key.ID, iamAccount)
		// write the key material out even when the cleanup step failed, it
		// cannot be retrieved again
		if writeErr := writePrivateKey(newKey, outputFile); writeErr != nil {
			glog.Errorf("%s", writeErr.Error())
		}
	}
	glog.Infof("Deleted %d key(s) of service account %s", len(deleted), iamAccount)
	exitOnError(serviceErr)
}

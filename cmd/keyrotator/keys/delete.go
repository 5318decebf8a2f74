package keys

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/flags"
)

// NewDeleteCommand command for deleting a single key.
func NewDeleteCommand() *cobra.Command {
	iamConfig := gcpiam.NewIAMConfig()

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a key of a service account",
		Long:  "Delete a key of a service account.",
		Run: func(cmd *cobra.Command, args []string) {
			runDelete(cmd, iamConfig)
		},
	}
	iamConfig.AddFlags(cmd.PersistentFlags())

	cmd.Flags().String(FlagProjectID, "", projectIDDescription)
	cmd.Flags().String(FlagIAMAccount, "", iamAccountDescription)
	cmd.Flags().String(FlagKeyID, "", "The ID of the key to delete")

	return cmd
}

func runDelete(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig) {
	projectID := flags.MustGetDefinedString(FlagProjectID, cmd.Flags())
	iamAccount := flags.MustGetDefinedString(FlagIAMAccount, cmd.Flags())
	keyID := flags.MustGetDefinedString(FlagKeyID, cmd.Flags())

	keyService := newKeyService(cmd, iamConfig)

	exitOnError(keyService.DeleteKey(cmd.Context(), projectID, iamAccount, keyID))

	glog.Infof("Deleted key %s of service account %s", keyID, iamAccount)
}

package keys

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/flags"
	"github.com/google/keyrotator/pkg/services"
	"github.com/google/keyrotator/pkg/shared"
)

func NewCreateCommand() *cobra.Command {
	iamConfig := gcpiam.NewIAMConfig()

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a key for a service account",
		Long:  "Create a key for a service account. The private key material is returned exactly once; it is written to the output file when one is given, otherwise to stdout.",
		Run: func(cmd *cobra.Command, args []string) {
			runCreate(cmd, iamConfig)
		},
	}
	iamConfig.AddFlags(cmd.PersistentFlags())

	cmd.Flags().String(FlagProjectID, "", projectIDDescription)
	cmd.Flags().String(FlagIAMAccount, "", iamAccountDescription)
	cmd.Flags().String(FlagKeyType, "", "The type of private key to create. Defaults to TYPE_GOOGLE_CREDENTIALS_FILE")
	cmd.Flags().String(FlagKeyAlgorithm, "", "The algorithm of the key to create. Defaults to KEY_ALG_RSA_2048")
	cmd.Flags().String(FlagOutputFile, "", "The file name the new private key is written to")

	return cmd
}

func runCreate(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig) {
	projectID := flags.MustGetDefinedString(FlagProjectID, cmd.Flags())
	iamAccount := flags.MustGetDefinedString(FlagIAMAccount, cmd.Flags())
	keyType := flags.MustGetString(FlagKeyType, cmd.Flags())
	keyAlgorithm := flags.MustGetString(FlagKeyAlgorithm, cmd.Flags())
	outputFile := flags.MustGetString(FlagOutputFile, cmd.Flags())

	keyService := newKeyService(cmd, iamConfig)

	newKey, serviceErr := keyService.CreateKey(cmd.Context(), projectID, iamAccount, keyType, keyAlgorithm)
	exitOnError(serviceErr)

	glog.Infof("Created key %s for service account %s", newKey.Key.ID, iamAccount)

	exitOnError(writePrivateKey(newKey, outputFile))
}

func writePrivateKey(newKey *services.NewKey, outputFile string) *errors.ServiceError {
	if outputFile == "" {
		fmt.Printf("%s", newKey.PrivateKeyData)
		return nil
	}

	// the key material is a credential, keep it owner readable only
	f, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.GeneralError("failed to write private key of %s to %s: %s", newKey.Key.ID, outputFile, err.Error())
	}
	defer shared.CloseQuietly(f)
	if _, err := f.Write(newKey.PrivateKeyData); err != nil {
		return errors.GeneralError("failed to write private key of %s to %s: %s", newKey.Key.ID, outputFile, err.Error())
	}
	glog.Infof("Private key of %s written to %s", newKey.Key.ID, outputFile)
	return nil
}

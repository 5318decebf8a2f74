package keys

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/services"
)

// newKeyService reads the IAM configuration files and builds the key service
// every subcommand runs against.
func newKeyService(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig) services.KeyService {
	if err := iamConfig.ReadFiles(); err != nil {
		glog.Fatalf("Unable to read configuration files: %s", err.Error())
	}

	client, err := gcpiam.NewClient(cmd.Context(), iamConfig)
	if err != nil {
		glog.Fatalf("Unable to create IAM client: %s", err.Error())
	}

	return services.NewKeyService(client)
}

// exitOnError terminates the process with the exit code carried by the error.
func exitOnError(serviceErr *errors.ServiceError) {
	if serviceErr == nil {
		return
	}
	glog.Errorf("%s", serviceErr.Error())
	glog.Flush()
	os.Exit(serviceErr.ExitCode)
}

package version

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/internal/buildinformation"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version information.",
		Run:   runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	info, err := buildinformation.GetBuildInfo()
	if err != nil {
		glog.Fatalf("Unable to get build information: %s", err.Error())
	}
	fmt.Printf("keyrotator %s\n", info.String())
}

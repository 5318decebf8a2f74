package keys

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/pkg/api"
	"github.com/google/keyrotator/pkg/client/gcpiam"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/flags"
)

func NewListCommand() *cobra.Command {
	iamConfig := gcpiam.NewIAMConfig()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keys of a service account",
		Long:  "List keys of a service account.",
		Run: func(cmd *cobra.Command, args []string) {
			runList(cmd, iamConfig)
		},
	}
	iamConfig.AddFlags(cmd.PersistentFlags())

	cmd.Flags().String(FlagProjectID, "", projectIDDescription)
	cmd.Flags().String(FlagIAMAccount, "", iamAccountDescription)
	cmd.Flags().String(FlagOutput, "table", "Output format, one of: table, json")

	return cmd
}

func runList(cmd *cobra.Command, iamConfig *gcpiam.IAMConfig) {
	projectID := flags.MustGetDefinedString(FlagProjectID, cmd.Flags())
	iamAccount := flags.MustGetDefinedString(FlagIAMAccount, cmd.Flags())
	output := flags.MustGetString(FlagOutput, cmd.Flags())

	keyService := newKeyService(cmd, iamConfig)

	list, serviceErr := keyService.ListKeys(cmd.Context(), projectID, iamAccount)
	exitOnError(serviceErr)

	switch output {
	case "json":
		formatted, err := json.MarshalIndent(list, "", "    ")
		if err != nil {
			glog.Fatalf("Failed to format key list: %s", err.Error())
		}
		fmt.Println(string(formatted))
	case "table":
		renderKeyTable(list.Items)
	default:
		exitOnError(errors.Validation("unsupported output format %q", output))
	}
}

func renderKeyTable(keys []api.ServiceAccountKey) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key ID", "Type", "Algorithm", "Created", "Expires"})
	for _, key := range keys {
		table.Append([]string{
			key.ID,
			key.KeyType,
			key.KeyAlgorithm,
			key.ValidAfterTime.Format(time.RFC3339),
			key.ValidBeforeTime.Format(time.RFC3339),
		})
	}
	table.Render()
}

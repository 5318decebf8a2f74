package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/keyrotator/cmd/keyrotator/keys"
	"github.com/google/keyrotator/cmd/keyrotator/version"
)

func main() {
	// This is needed to make `glog` believe that the flags have already been parsed, otherwise
	// every log message is prefixed by an error message stating that the flags haven't been
	// parsed.
	_ = flag.CommandLine.Parse([]string{})

	// Always log to stderr by default
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	rootCmd := &cobra.Command{
		Use:  "keyrotator",
		Long: "keyrotator manages the keys of Google Cloud service accounts",
	}

	// All subcommands under root
	rootCmd.AddCommand(
		keys.NewListCommand(),
		keys.NewCreateCommand(),
		keys.NewDeleteCommand(),
		keys.NewCleanupCommand(),
		keys.NewRotateCommand(),
		version.NewVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("error running command: %v", err)
	}
}

package keys

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

func TestCommands_Flags(t *testing.T) {
	tests := []struct {
		name      string
		cmd       *cobra.Command
		wantFlags []string
	}{
		{
			name:      "list registers its flags",
			cmd:       NewListCommand(),
			wantFlags: []string{FlagProjectID, FlagIAMAccount, FlagOutput},
		},
		{
			name:      "create registers its flags",
			cmd:       NewCreateCommand(),
			wantFlags: []string{FlagProjectID, FlagIAMAccount, FlagKeyType, FlagKeyAlgorithm, FlagOutputFile},
		},
		{
			name:      "delete registers its flags",
			cmd:       NewDeleteCommand(),
			wantFlags: []string{FlagProjectID, FlagIAMAccount, FlagKeyID},
		},
		{
			name:      "cleanup registers its flags",
			cmd:       NewCleanupCommand(),
			wantFlags: []string{FlagProjectID, FlagIAMAccount, FlagKeyMaxAge, FlagDryRun, "policy-file"},
		},
		{
			name:      "rotate registers its flags",
			cmd:       NewRotateCommand(),
			wantFlags: []string{FlagProjectID, FlagIAMAccount, FlagKeyMaxAge, FlagKeyType, FlagKeyAlgorithm, FlagOutputFile},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			for _, name := range tt.wantFlags {
				g.Expect(tt.cmd.Flags().Lookup(name)).ToNot(gomega.BeNil(), "flag %s is missing", name)
			}
			// the IAM client configuration is always available
			g.Expect(tt.cmd.PersistentFlags().Lookup("credentials-file")).ToNot(gomega.BeNil())
			g.Expect(tt.cmd.PersistentFlags().Lookup("iam-endpoint")).ToNot(gomega.BeNil())
		})
	}
}

package gcpiam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func TestIAMConfig_AddFlags(t *testing.T) {
	g := gomega.NewWithT(t)

	c := NewIAMConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.AddFlags(fs)

	g.Expect(fs.Lookup("credentials-file")).ToNot(gomega.BeNil())
	g.Expect(fs.Lookup("iam-endpoint")).ToNot(gomega.BeNil())
}

func TestIAMConfig_ReadFiles(t *testing.T) {
	g := gomega.NewWithT(t)

	credentialsFile := filepath.Join(t.TempDir(), "credentials.json")
	g.Expect(os.WriteFile(credentialsFile, []byte(`{"type":"service_account"}`+"\n"), 0600)).To(gomega.Succeed())

	c := NewIAMConfig()
	c.CredentialsFile = credentialsFile
	g.Expect(c.ReadFiles()).To(gomega.Succeed())
	g.Expect(c.Credentials).To(gomega.Equal(`{"type":"service_account"}`))
}

func TestIAMConfig_ReadFiles_noFile(t *testing.T) {
	g := gomega.NewWithT(t)

	c := NewIAMConfig()
	g.Expect(c.ReadFiles()).To(gomega.Succeed())
	g.Expect(c.Credentials).To(gomega.BeEmpty())

	c.CredentialsFile = "does-not-exist.json"
	g.Expect(c.ReadFiles()).ToNot(gomega.Succeed())
}

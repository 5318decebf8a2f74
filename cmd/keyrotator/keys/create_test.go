package keys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"

	"github.com/google/keyrotator/pkg/api"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/services"
)

func Test_writePrivateKey(t *testing.T) {
	g := gomega.NewWithT(t)

	newKey := &services.NewKey{
		Key:            api.ServiceAccountKey{ID: "key-1", KeyType: api.KeyTypeUserManaged},
		PrivateKeyData: []byte(`{"type": "service_account"}`),
	}

	outputFile := filepath.Join(t.TempDir(), "key.json")
	g.Expect(writePrivateKey(newKey, outputFile)).To(gomega.BeNil())

	written, err := os.ReadFile(outputFile)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(written).To(gomega.Equal(newKey.PrivateKeyData))

	info, err := os.Stat(outputFile)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(info.Mode().Perm()).To(gomega.Equal(os.FileMode(0600)))
}

func Test_writePrivateKey_UnwritablePath(t *testing.T) {
	g := gomega.NewWithT(t)

	newKey := &services.NewKey{
		Key:            api.ServiceAccountKey{ID: "key-1", KeyType: api.KeyTypeUserManaged},
		PrivateKeyData: []byte(`{"type": "service_account"}`),
	}

	serviceErr := writePrivateKey(newKey, filepath.Join(t.TempDir(), "no-such-dir", "key.json"))
	g.Expect(serviceErr).ToNot(gomega.BeNil())
	g.Expect(serviceErr.Code).To(gomega.Equal(errors.ErrorGeneral))
}

package buildinformation

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestGetBuildInfo(t *testing.T) {
	g := gomega.NewWithT(t)

	info, err := GetBuildInfo()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(info.GetGoVersion()).ToNot(gomega.BeEmpty())
	g.Expect(info.String()).To(gomega.ContainSubstring(info.GetGoVersion()))
}

func TestBuildInfo_String_unknownCommit(t *testing.T) {
	g := gomega.NewWithT(t)

	b := &BuildInfo{goVersion: "go1.19"}
	g.Expect(b.String()).To(gomega.ContainSubstring("commit unknown"))
}

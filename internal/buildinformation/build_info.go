package buildinformation

import (
	"fmt"
	"runtime/debug"

	"github.com/google/keyrotator/pkg/errors"
)

const (
	goarch      string = "GOARCH"
	goos        string = "GOOS"
	vcsrevision string = "vcs.revision"
	vcstime     string = "vcs.time"
)

type BuildInfo struct {
	commitSHA       string
	architecture    string
	vcsTime         string
	operatingSystem string
	goVersion       string
}

// GetBuildInfo returns build related information of the binary or an error.
func GetBuildInfo() (*BuildInfo, error) {
	b := &BuildInfo{}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.GeneralError("unable to get build info")
	}
	b.goVersion = info.GoVersion
	for _, i := range info.Settings {
		switch i.Key {
		case vcstime:
			b.vcsTime = i.Value
		case goarch:
			b.architecture = i.Value
		case goos:
			b.operatingSystem = i.Value
		case vcsrevision:
			b.commitSHA = i.Value
		}
	}
	return b, nil
}

// GetCommitSHA returns the commit the binary was built from. The returned
// string can be empty if the binary was not built using VCS.
func (b *BuildInfo) GetCommitSHA() string {
	return b.commitSHA
}

func (b *BuildInfo) GetGoVersion() string {
	return b.goVersion
}

func (b *BuildInfo) GetVCSTime() string {
	return b.vcsTime
}

// String renders the build information as a single human readable line.
func (b *BuildInfo) String() string {
	commit := b.commitSHA
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("commit %s (%s, %s/%s, built %s)", commit, b.goVersion, b.operatingSystem, b.architecture, b.vcsTime)
}

// Package buildinfo reports the version of the codegraph binary.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/codegraph/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/codegraph/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// Binaries installed with `go install` carry no ldflags; for them the module
// version and VCS revision recorded by the toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, "dev" when unset.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolve returns version, commit and date, falling back to the toolchain's
// build info for any value ldflags left unset.
func Resolve() (version, commit, date string) {
	version, commit, date = Version, Commit, Date
	info, ok := readBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "none" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return
}

// String returns the formatted build information.
func String() string {
	v, c, d := Resolve()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", v, c, d)
}

// Template returns the version template string for cobra.
func Template() string {
	v, c, d := Resolve()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", v, c, d)
}

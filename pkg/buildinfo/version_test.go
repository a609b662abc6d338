package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func setVars(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestResolve(t *testing.T) {
	moduleInfo := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name                string
		version, commit     string
		info                *debug.BuildInfo
		wantVer, wantCommit string
		wantDate            string
	}{
		{"no build info", "dev", "none", nil, "dev", "none", "unknown"},
		{"from build info", "dev", "none", moduleInfo, "v0.3.1", "abc123", "2026-01-02T03:04:05Z"},
		{"ldflags win", "v1.0.0", "fff", moduleInfo, "v1.0.0", "fff", "2026-01-02T03:04:05Z"},
		{"devel module", "dev", "none", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev", "none", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setVars(t, tt.version, tt.commit, "unknown")
			stubBuildInfo(t, tt.info)
			v, c, d := Resolve()
			if v != tt.wantVer || c != tt.wantCommit || d != tt.wantDate {
				t.Errorf("Resolve() = %q, %q, %q, want %q, %q, %q", v, c, d, tt.wantVer, tt.wantCommit, tt.wantDate)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	setVars(t, "v2.0.0", "deadbeef", "today")
	stubBuildInfo(t, nil)
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v2.0.0\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "commit: deadbeef") {
		t.Errorf("String() = %q, want commit line", String())
	}
}

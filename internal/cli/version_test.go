package cli

import (
	"runtime/debug"
	"testing"
)

func TestCurrentVersionInfoFallback(t *testing.T) {
	orig := readBuildInfo
	defer func() { readBuildInfo = orig }()

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	info := currentVersionInfo()
	if info.Version != "devel" {
		t.Errorf("Version = %q, want devel", info.Version)
	}
	if info.ModulePath != defaultModulePath {
		t.Errorf("ModulePath = %q, want %q", info.ModulePath, defaultModulePath)
	}
	if info.GoVersion == "" || info.GOOS == "" || info.GOARCH == "" {
		t.Errorf("platform fields not populated: %+v", info)
	}
}

func TestCurrentVersionInfoFromBuildInfo(t *testing.T) {
	orig := readBuildInfo
	defer func() { readBuildInfo = orig }()

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.23.0",
			Main: debug.Module{
				Path:    "github.com/ktsuji/sqltrace",
				Version: "v1.2.3",
			},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef0"},
				{Key: "vcs.time", Value: "2026-08-01T00:00:00Z"},
			},
		}, true
	}

	info := currentVersionInfo()
	if info.Version != "v1.2.3" {
		t.Errorf("Version = %q, want v1.2.3", info.Version)
	}
	if info.Commit != "abcdef0" {
		t.Errorf("Commit = %q", info.Commit)
	}
	if info.GoVersion != "go1.23.0" {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
}

func TestNormalizeVersion(t *testing.T) {
	if got := normalizeVersion("(devel)"); got != "devel" {
		t.Errorf("normalizeVersion((devel)) = %q", got)
	}
	if got := normalizeVersion("v0.3.0"); got != "v0.3.0" {
		t.Errorf("normalizeVersion(v0.3.0) = %q", got)
	}
}

package version

import (
	"testing"
)

func TestGetDefaults(t *testing.T) {
	info := Get()

	if info.Version != "dev" {
		t.Errorf("Version = %q, want %q", info.Version, "dev")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion not populated from build info")
	}
}

func TestGetHonorsLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version = "1.2.0"
	Commit = "abc1234"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.Commit != "abc1234" {
		t.Errorf("Commit = %q", info.Commit)
	}
}

package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGet_UsesLdflagsValues(t *testing.T) {
	defer saveAndRestore()()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildTime = "2026-01-02T15:04:05Z"

	info := Get()
	if info.Version != "1.2.3" || info.GitCommit != "abc123" {
		t.Errorf("Get() = %+v, want ldflags values", info)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should always be populated")
	}
}

func TestShort_TruncatesCommit(t *testing.T) {
	defer saveAndRestore()()

	Version = "1.2.3"
	GitCommit = "0123456789abcdef0123"

	got := Short()
	if !strings.HasPrefix(got, "1.2.3 (") {
		t.Fatalf("Short() = %q, want version prefix", got)
	}
	if strings.Contains(got, "abcdef0") {
		t.Errorf("Short() = %q, commit should be truncated to 12 chars", got)
	}
}

package version

import (
	"strings"
	"testing"
)

func TestGet_Defaults(t *testing.T) {
	info := Get()

	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev default", info.Version)
	}
	if info.GitCommit != "unknown" || info.BuildTime != "unknown" {
		t.Errorf("unstamped build: %+v", info)
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abc1234", BuildTime: "2026-01-01T00:00:00Z"}

	got := info.String()
	for _, part := range []string{"v1.2.3", "abc1234", "2026-01-01T00:00:00Z"} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, missing %q", got, part)
		}
	}
}

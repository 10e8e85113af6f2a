package version

import "testing"

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	// Default value should be "unknown" until set by build
	if Version != "unknown" {
		t.Logf("Version is: %s (expected 'unknown' or version set via ldflags)", Version)
	}
}

func TestBuildInfo(t *testing.T) {
	if BuildTime == "" {
		t.Error("BuildTime should be initialized")
	}

	if GitCommit == "" {
		t.Error("GitCommit should be initialized")
	}
}

func TestMatchesHost(t *testing.T) {
	cases := map[string]bool{
		"":            true,
		MDBookVersion: true,
		"0.4.37":      false,
		"0.5.0":       false,
	}
	for host, want := range cases {
		if got := MatchesHost(host); got != want {
			t.Errorf("MatchesHost(%q) = %v, want %v", host, got, want)
		}
	}
}

package version

import (
	"strings"
	"testing"
)

func TestDetailedCarriesAllIdentityFields(t *testing.T) {
	out := Detailed()
	for _, want := range []string{Version, Commit, Date} {
		if !strings.Contains(out, want) {
			t.Errorf("Detailed() = %q, missing %q", out, want)
		}
	}
}

func TestGetVersionIsTagOnly(t *testing.T) {
	if got := GetVersion(); got != Version {
		t.Errorf("GetVersion() = %q, want %q", got, Version)
	}
}

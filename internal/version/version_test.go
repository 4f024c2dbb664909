package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b[") {
		t.Error("Version must stay plain: it is part of the cache signature")
	}
}

func TestLine_OptionalFields(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	Version = "1.2.3"
	GitCommit = ""
	BuildDate = ""
	if got := Line(false); got != "phpfix 1.2.3" {
		t.Errorf("Line = %q", got)
	}

	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"
	if got := Line(false); got != "phpfix 1.2.3 (abc123) built 2024-01-15T10:30:00Z" {
		t.Errorf("Line = %q", got)
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() {
		Version, color.NoColor = origVersion, origNoColor
	})
	color.NoColor = false

	Version = "0.1.0-dev"
	got := Colored()
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored = %q", got)
	}

	Version = "weird"
	if Colored() != "weird" {
		t.Error("non-semver versions are returned as is")
	}
}

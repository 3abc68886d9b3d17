package deps

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if current < minimum, 0 if equal, 1 if current > minimum.
// A leading "v" is stripped before parsing.
func CompareVersions(current, minimum string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return 0, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return cv.Compare(mv), nil
}

// ExtractVersion pulls the version token out of `--version` output. Tools
// print either a bare version ("10.2.4") or a prefixed one ("v20.11.0",
// "git version 2.43.0"); the first token that parses as semver wins.
func ExtractVersion(output string) string {
	for _, field := range strings.Fields(output) {
		if _, err := parseSemver(field); err == nil {
			return strings.TrimPrefix(field, "v")
		}
	}
	return ""
}

func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// Package versioning wraps semver parsing for widget versions and for the
// generator version recorded in generated manifests.
package versioning

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Validate reports whether version is a full MAJOR.MINOR.PATCH semver string.
func Validate(version string) error {
	if _, err := semver.StrictNewVersion(strings.TrimSpace(version)); err != nil {
		return fmt.Errorf("version %q must look like 1.0.0: %w", version, err)
	}
	return nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// GeneratedByNewer reports whether a project generated by projectGenerator
// was produced by a newer generator than current. Unknown or unparseable
// versions (such as "dev" builds) never count as newer.
func GeneratedByNewer(projectGenerator, current string) bool {
	if projectGenerator == "" {
		return false
	}
	cmp, err := CompareVersions(projectGenerator, current)
	if err != nil {
		return false
	}
	return cmp == 1
}

func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// Package semver wraps semantic version parsing and bump arithmetic for
// addon.xml version attributes.
package semver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Bump kinds accepted by Bump.
const (
	Major = "major"
	Minor = "minor"
	Patch = "patch"
)

// IsValid reports whether v is a strict X.Y.Z semantic version
// (optionally with pre-release or build metadata).
func IsValid(v string) bool {
	_, err := semver.StrictNewVersion(v)
	return err == nil
}

// Bump returns current incremented by kind (major, minor, or patch).
// Pre-release and build metadata are dropped, matching semver increment
// semantics.
func Bump(current, kind string) (string, error) {
	v, err := semver.StrictNewVersion(current)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", current, err)
	}

	var next semver.Version
	switch kind {
	case Major:
		next = v.IncMajor()
	case Minor:
		next = v.IncMinor()
	case Patch:
		next = v.IncPatch()
	default:
		return "", fmt.Errorf("invalid bump type %q (expected major, minor, or patch)", kind)
	}

	return next.String(), nil
}

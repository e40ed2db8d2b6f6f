package domain

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// releaseTagPattern accepts plain three-part numeric versions only; no "v"
// prefix, pre-release or build metadata.
var releaseTagPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsReleaseTag reports whether name is a strict MAJOR.MINOR.PATCH tag.
func IsReleaseTag(name string) bool {
	return releaseTagPattern.MatchString(name)
}

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a string.
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// Compare compares two versions.
func (v *Version) Compare(other *Version) int {
	return v.Version.Compare(other.Version)
}

// String returns the version the way release tags spell it, without a prefix.
func (v *Version) String() string {
	return v.Version.String()
}

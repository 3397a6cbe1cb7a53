package domain

import (
	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a string.
func NewVersion(s string) (*Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// IsSemanticVersion reports whether s is a strict semantic version without a "v" prefix.
// Tag names never depend on the answer; it only drives a warning.
func IsSemanticVersion(s string) bool {
	_, err := NewVersion(s)
	return err == nil
}

// String returns the version string as written in the manifest.
func (v *Version) String() string {
	return v.Original()
}

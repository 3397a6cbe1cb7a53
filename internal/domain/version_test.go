package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersion(t *testing.T) {
	t.Run("Should create valid version from string", func(t *testing.T) {
		version, err := NewVersion("1.2.3")
		require.NoError(t, err)
		assert.NotNil(t, version)
		assert.Equal(t, "1.2.3", version.String())
	})
	t.Run("Should return error for invalid version string", func(t *testing.T) {
		version, err := NewVersion("invalid")
		assert.Error(t, err)
		assert.Nil(t, version)
	})
	t.Run("Should reject v prefix", func(t *testing.T) {
		_, err := NewVersion("v1.2.3")
		assert.Error(t, err)
	})
	t.Run("Should keep prerelease and build metadata", func(t *testing.T) {
		version, err := NewVersion("1.2.3-alpha.1+build123")
		require.NoError(t, err)
		assert.Equal(t, "1.2.3-alpha.1+build123", version.String())
	})
}

func TestIsSemanticVersion(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0.1.0", true},
		{"1.0.0-rc.1", true},
		{"1.0", false},
		{"2024.10.14", true},
		{"latest", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSemanticVersion(tc.in))
		})
	}
}

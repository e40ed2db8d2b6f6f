package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReleaseTag(t *testing.T) {
	cases := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "plain version", tag: "1.2.3", want: true},
		{name: "multi digit groups", tag: "10.20.300", want: true},
		{name: "v prefix", tag: "v1.2.3", want: false},
		{name: "two groups", tag: "1.2", want: false},
		{name: "pre-release suffix", tag: "1.2.3-rc1", want: false},
		{name: "build metadata", tag: "1.2.3+build.7", want: false},
		{name: "four groups", tag: "1.2.3.4", want: false},
		{name: "trailing space", tag: "1.2.3 ", want: false},
		{name: "empty", tag: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsReleaseTag(tc.tag))
		})
	}
}

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
}

func TestVersion_Compare(t *testing.T) {
	t.Run("Should order versions numerically", func(t *testing.T) {
		older, err := NewVersion("1.9.0")
		require.NoError(t, err)
		newer, err := NewVersion("1.10.0")
		require.NoError(t, err)
		assert.Equal(t, -1, older.Compare(newer))
		assert.Equal(t, 1, newer.Compare(older))
		assert.Equal(t, 0, newer.Compare(newer))
	})
}

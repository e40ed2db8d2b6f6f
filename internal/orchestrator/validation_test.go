package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBranchName(t *testing.T) {
	valid := []string{"main", "release/1.x", "trunk_2"}
	for _, name := range valid {
		t.Run("Should accept "+name, func(t *testing.T) {
			assert.NoError(t, ValidateBranchName(name))
		})
	}
	invalid := []string{"", "/main", "main/", "a..b", "main.lock", "feat ure", strings.Repeat("a", 256)}
	for _, name := range invalid {
		t.Run("Should reject "+name, func(t *testing.T) {
			assert.Error(t, ValidateBranchName(name))
		})
	}
}

func TestValidateAssetName(t *testing.T) {
	assert.NoError(t, ValidateAssetName("release.aar"))
	assert.Error(t, ValidateAssetName(""))
	assert.Error(t, ValidateAssetName("../release.aar"))
}

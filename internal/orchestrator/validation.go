package orchestrator

import (
	"fmt"
	"regexp"
	"strings"
)

// branchNameRegex matches valid git branch names
var branchNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// ValidateBranchName validates a git branch name.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if len(branch) > 255 {
		return fmt.Errorf("branch name too long: %d characters (max: 255)", len(branch))
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("branch name cannot start or end with slash: %s", branch)
	}
	if strings.Contains(branch, "..") {
		return fmt.Errorf("branch name cannot contain consecutive dots: %s", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("branch name cannot end with .lock: %s", branch)
	}
	if !branchNameRegex.MatchString(branch) {
		return fmt.Errorf("invalid branch name format: %s", branch)
	}
	return nil
}

// ValidateAssetName rejects asset names that cannot be used as a file name.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("asset name cannot contain path separators: %s", name)
	}
	return nil
}

package plan

import (
	"strings"
	"unicode"
)

// ValidateBranchName trims name and rejects it when empty or when it
// contains whitespace.
func ValidateBranchName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Invalid("branch name cannot be empty")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "", Invalid("branch name cannot contain whitespace")
	}
	return name, nil
}

// NormalizeBranchName turns free-text input into a branch name candidate:
// surrounding space is trimmed and inner spaces become hyphens.
func NormalizeBranchName(input string) string {
	return strings.ReplaceAll(strings.TrimSpace(input), " ", "-")
}

// CreateBranch returns the plan creating name and switching to it.
func CreateBranch(name string) (Plan, error) {
	name, err := ValidateBranchName(name)
	if err != nil {
		return nil, err
	}
	return Plan{{
		Args:    []string{"checkout", "-b", name},
		Mode:    Silent,
		Message: "Created and switched to branch '" + name + "'",
	}}, nil
}

// Checkout returns the plan switching to an existing branch.
func Checkout(name string) Plan {
	return Plan{{
		Args:    []string{"checkout", name},
		Mode:    Silent,
		Message: "Switched to branch '" + name + "'",
	}}
}

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/supgit/internal/ui/styles"
)

// Validate checks value ranges and enums.
func (c *Config) Validate() error {
	if c.Log.ShortCount <= 0 {
		return fmt.Errorf("log.short_count must be positive, got %d", c.Log.ShortCount)
	}
	if c.Log.LongCount <= 0 {
		return fmt.Errorf("log.long_count must be positive, got %d", c.Log.LongCount)
	}
	if c.Update.Interval < 0 {
		return fmt.Errorf("update.interval must not be negative, got %s", c.Update.Interval)
	}
	if err := ValidatePath(c.Alias.ShellConfig, "alias.shell_config"); err != nil {
		return err
	}
	return validateEnum(c.UI.Theme, "ui.theme", styles.ThemeNames())
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

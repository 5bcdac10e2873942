package update

import (
	"context"
	"fmt"

	"github.com/raphi011/supgit/internal/cmd"
	"github.com/raphi011/supgit/internal/output"
)

// Installer runs the command that installs a release.
type Installer func(ctx context.Context, dir, name string, args ...string) error

// SelfUpdate installs the latest release with "go install", streaming the
// toolchain's output.
func SelfUpdate(ctx context.Context, current string, install Installer) error {
	if install == nil {
		install = cmd.StreamContext
	}
	out := output.FromContext(ctx)

	out.Printf("Current version: %s\n", current)
	out.Println("Updating via go install...")

	if err := install(ctx, "", "go", "install", InstallTarget()); err != nil {
		return fmt.Errorf("go install failed: %w", err)
	}

	out.Success("Update complete")
	return nil
}

// InstallTarget returns the package path passed to "go install".
func InstallTarget() string {
	return ModulePath + "/cmd/supgit@latest"
}

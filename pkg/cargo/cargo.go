// Package cargo invokes the target repository's build and test tooling as
// external processes, pointed at the repository's manifest.
package cargo

import (
	"context"
	"path/filepath"

	"github.com/openstratos/probe-ci/internal/models"
)

// Cargo drives the build and test phases of a single target repository.
type Cargo struct {
	bin      string
	manifest string
	runner   Runner
}

// New returns a Cargo driving the repository rooted at repoPath through the
// given runner.
func New(bin, repoPath string, runner Runner) *Cargo {
	return &Cargo{
		bin:      bin,
		manifest: filepath.Join(repoPath, "Cargo.toml"),
		runner:   runner,
	}
}

// Build compiles the target repository with its default feature set.
func (c *Cargo) Build(ctx context.Context) (models.PhaseOutcome, error) {
	return c.runner.Run(ctx, c.bin, "build", "--manifest-path", c.manifest)
}

// Test runs the hardware-dependent test suite. Default features are turned
// off and only the given ones are enabled; the --features pair is omitted
// entirely when the string is empty. Tests marked ignored are the ones that
// need real hardware, so they are selected explicitly.
func (c *Cargo) Test(ctx context.Context, features string) (models.PhaseOutcome, error) {
	args := []string{"test", "--manifest-path", c.manifest, "--no-default-features"}
	if features != "" {
		args = append(args, "--features", features)
	}
	args = append(args, "--", "--ignored")

	return c.runner.Run(ctx, c.bin, args...)
}

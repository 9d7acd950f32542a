package cargo

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/openstratos/probe-ci/internal/models"
	harnessErrs "github.com/openstratos/probe-ci/pkg/errors"
)

// Runner executes one external command to completion, capturing both output
// streams. A non-zero exit shows up as Succeeded == false on the outcome; it
// is data, not an error. Only a command that cannot be launched at all is an
// error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (models.PhaseOutcome, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (models.PhaseOutcome, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return models.PhaseOutcome{}, harnessErrs.NewCommandSpawnError(name, err)
		}
	}

	return models.PhaseOutcome{
		Succeeded: err == nil,
		Stdout:    sanitize(stdout.Bytes()),
		Stderr:    sanitize(stderr.Bytes()),
	}, nil
}

// sanitize decodes raw process output permissively, replacing invalid UTF-8
// sequences instead of failing.
func sanitize(raw []byte) string {
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

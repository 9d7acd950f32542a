// Package config defines the compiled-in configuration of the harness.
//
// The values are fixed for the probe deployment and are not read from the
// environment. They live in a struct, passed into the pipeline entry point,
// so tests can substitute any of them.
package config

import (
	"fmt"

	"github.com/creasty/defaults"
)

// Configuration carries the fixed parameters of a harness run.
type Configuration struct {
	// RepoPath is the checkout of the target repository on the probe.
	RepoPath string `default:"/opt/openstratos/server-rs"`
	// ReportURL is the endpoint receiving the JSON test report.
	ReportURL string `default:"http://staging.openstratos.org/test"`
	// KeyLength is the exact length of a valid operator key.
	KeyLength int `default:"20"`
	// CargoBin is the executable driving the target's build and tests.
	CargoBin string `default:"cargo"`
}

// NewDefault returns the configuration with every field at its compiled-in
// default value.
func NewDefault() (Configuration, error) {
	var cfg Configuration
	if err := defaults.Set(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	return cfg, nil
}

// DebugMap returns the configuration as fields safe for structured logging.
func (c Configuration) DebugMap() map[string]any {
	return map[string]any{
		"repo_path":  c.RepoPath,
		"report_url": c.ReportURL,
		"key_length": c.KeyLength,
		"cargo_bin":  c.CargoBin,
	}
}

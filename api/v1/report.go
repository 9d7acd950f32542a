// Package v1 defines the wire types accepted by the remote test endpoint.
package v1

import "github.com/openstratos/probe-ci/internal/models"

// TestReport is the JSON body of the report request.
type TestReport struct {
	Build       bool     `json:"build"`
	BuildStdout string   `json:"build_stdout"`
	BuildStderr string   `json:"build_stderr"`
	Test        bool     `json:"test"`
	TestStdout  string   `json:"test_stdout"`
	TestStderr  string   `json:"test_stderr"`
	Features    []string `json:"features"`
}

// NewTestReportFromModel converts a models.TestResult to its wire shape.
func NewTestReportFromModel(r models.TestResult) TestReport {
	features := make([]string, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, string(f))
	}

	return TestReport{
		Build:       r.Build.Succeeded,
		BuildStdout: r.Build.Stdout,
		BuildStderr: r.Build.Stderr,
		Test:        r.Test.Succeeded,
		TestStdout:  r.Test.Stdout,
		TestStderr:  r.Test.Stderr,
		Features:    features,
	}
}

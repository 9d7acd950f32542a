package services_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openstratos/probe-ci/internal/config"
	"github.com/openstratos/probe-ci/internal/models"
	"github.com/openstratos/probe-ci/internal/services"
	harnessErrs "github.com/openstratos/probe-ci/pkg/errors"
)

type fakeBuilder struct {
	buildOut models.PhaseOutcome
	buildErr error
	testOut  models.PhaseOutcome
	testErr  error

	buildCalls int
	testCalls  []string
}

func (b *fakeBuilder) Build(ctx context.Context) (models.PhaseOutcome, error) {
	b.buildCalls++
	return b.buildOut, b.buildErr
}

func (b *fakeBuilder) Test(ctx context.Context, features string) (models.PhaseOutcome, error) {
	b.testCalls = append(b.testCalls, features)
	return b.testOut, b.testErr
}

type fakeReporter struct {
	err error

	calls  int
	key    string
	result models.TestResult
}

func (r *fakeReporter) Send(ctx context.Context, key string, result models.TestResult) error {
	r.calls++
	r.key = key
	r.result = result
	return r.err
}

var _ = Describe("Pipeline", func() {
	const validKey = "12345678901234567890"

	var (
		ctx      context.Context
		cfg      config.Configuration
		builder  *fakeBuilder
		reporter *fakeReporter
		out      *bytes.Buffer
	)

	run := func(input string, flags models.FeatureFlags) error {
		p := services.NewPipeline(cfg, builder, reporter, strings.NewReader(input), out)
		return p.Run(ctx, flags)
	}

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Configuration{
			RepoPath:  "/tmp/target",
			ReportURL: "http://report.invalid/test",
			KeyLength: 20,
			CargoBin:  "cargo",
		}
		builder = &fakeBuilder{
			buildOut: models.PhaseOutcome{Succeeded: true, Stdout: "built"},
			testOut:  models.PhaseOutcome{Succeeded: true, Stdout: "tested"},
		}
		reporter = &fakeReporter{}
		out = &bytes.Buffer{}
	})

	// Given a valid key, a confirmed SMS gate and fona+gps selected
	// When the pipeline runs
	// Then both phases execute and the report carries exactly [fona, gps]
	It("should run both phases and report the exact tested feature set", func() {
		err := run(validKey+"\ny\n", models.FeatureFlags{Fona: true, GPS: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(builder.buildCalls).To(Equal(1))
		Expect(builder.testCalls).To(Equal([]string{"fona gps"}))
		Expect(reporter.calls).To(Equal(1))
		Expect(reporter.key).To(Equal(validKey))
		Expect(reporter.result.Features).To(Equal([]models.Feature{models.FeatureFona, models.FeatureGPS}))
		Expect(reporter.result.Build.Succeeded).To(BeTrue())
		Expect(reporter.result.Test.Succeeded).To(BeTrue())
	})

	// Given --no_sms and no other feature
	// When the pipeline runs
	// Then no confirmation is asked and the test command gets no feature string
	It("should skip the SMS gate and the feature string when no_sms is set alone with fona", func() {
		err := run(validKey+"\n", models.FeatureFlags{Fona: true, NoSMS: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).NotTo(ContainSubstring("cost you money"))
		Expect(builder.testCalls).To(Equal([]string{"fona"}))
		Expect(reporter.result.Features).To(Equal([]models.Feature{models.FeatureFona}))
	})

	// Given the operator declines the SMS cost gate
	// When the pipeline runs
	// Then nothing is built, tested or sent, and the run still succeeds
	It("should end early and successfully when the operator declines the gate", func() {
		err := run(validKey+"\nn\n", models.FeatureFlags{Fona: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Aborting test."))
		Expect(builder.buildCalls).To(BeZero())
		Expect(builder.testCalls).To(BeEmpty())
		Expect(reporter.calls).To(BeZero())
	})

	// Given the operator answers garbage before declining
	// When the pipeline runs
	// Then the gate repeats with no side effects until the decline
	It("should repeat the gate without side effects on invalid answers", func() {
		err := run(validKey+"\nwhat\nn\n", models.FeatureFlags{})

		Expect(err).NotTo(HaveOccurred())
		Expect(builder.buildCalls).To(BeZero())
		Expect(reporter.calls).To(BeZero())
	})

	// Given a build that exits with a failure
	// When the pipeline runs
	// Then the test phase still executes and both outcomes are reported
	It("should continue to the test phase and report after a build failure", func() {
		builder.buildOut = models.PhaseOutcome{Succeeded: false, Stderr: "compile error"}

		err := run(validKey+"\ny\n", models.FeatureFlags{GPS: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(builder.testCalls).To(HaveLen(1))
		Expect(reporter.calls).To(Equal(1))
		Expect(reporter.result.Build.Succeeded).To(BeFalse())
		Expect(reporter.result.Build.Stderr).To(Equal("compile error"))
		Expect(reporter.result.Test.Succeeded).To(BeTrue())
	})

	// Given a build command that cannot be launched
	// When the pipeline runs
	// Then the spawn error aborts the run before any report is sent
	It("should abort on a spawn error without reporting", func() {
		builder.buildErr = harnessErrs.NewCommandSpawnError("cargo", context.DeadlineExceeded)

		err := run(validKey+"\ny\n", models.FeatureFlags{})

		Expect(err).To(HaveOccurred())
		Expect(harnessErrs.IsCommandSpawnError(err)).To(BeTrue())
		Expect(builder.testCalls).To(BeEmpty())
		Expect(reporter.calls).To(BeZero())
	})

	// Given a reporter that fails with a non-OK response
	// When the pipeline runs
	// Then the error propagates to the caller
	It("should propagate reporting failures", func() {
		reporter.err = harnessErrs.NewUnexpectedResponseError("500 Internal Server Error", 500, "boom")

		err := run(validKey+"\ny\n", models.FeatureFlags{})

		Expect(err).To(HaveOccurred())
		Expect(harnessErrs.IsUnexpectedResponseError(err)).To(BeTrue())
	})

	// Given an invalid key followed by a valid one
	// When the pipeline runs
	// Then the key prompt repeats and the valid key authenticates the report
	It("should re-prompt for the key until it has the configured length", func() {
		err := run("bad\n"+validKey+"\ny\n", models.FeatureFlags{})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Invalid key"))
		Expect(reporter.key).To(Equal(validKey))
	})

	// Given an input stream that closes during key entry
	// When the pipeline runs
	// Then the run fails with an input error and nothing executes
	It("should fail with an input error when stdin closes during key entry", func() {
		err := run("", models.FeatureFlags{})

		Expect(err).To(HaveOccurred())
		Expect(harnessErrs.IsInputError(err)).To(BeTrue())
		Expect(builder.buildCalls).To(BeZero())
		Expect(reporter.calls).To(BeZero())
	})
})

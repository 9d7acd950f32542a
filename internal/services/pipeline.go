package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/openstratos/probe-ci/internal/config"
	"github.com/openstratos/probe-ci/internal/models"
)

// Builder runs the build and test phases against the target repository.
type Builder interface {
	Build(ctx context.Context) (models.PhaseOutcome, error)
	Test(ctx context.Context, features string) (models.PhaseOutcome, error)
}

// Reporter delivers a finalized result to the remote endpoint.
type Reporter interface {
	Send(ctx context.Context, key string, result models.TestResult) error
}

// Pipeline runs one full harness session: key entry, feature selection with
// the SMS cost gate, build, test, and report. Stages run strictly in
// sequence and each one gates the next; nothing runs concurrently.
type Pipeline struct {
	cfg      config.Configuration
	builder  Builder
	reporter Reporter
	prompter *Prompter
	log      *zap.SugaredLogger
}

func NewPipeline(cfg config.Configuration, builder Builder, reporter Reporter, in io.Reader, out io.Writer) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		builder:  builder,
		reporter: reporter,
		prompter: NewPrompter(in, out),
		log:      zap.S().Named("pipeline"),
	}
}

// Run executes the whole session. A declined SMS gate ends the run early and
// successfully, before anything is built, tested or sent. Build and test
// exit failures are recorded in the result and reported, never returned as
// errors; only an unlaunchable command, a broken operator stream or a
// reporting failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, flags models.FeatureFlags) error {
	key, err := p.prompter.ReadKey(p.cfg.KeyLength)
	if err != nil {
		return err
	}

	if !flags.NoSMS {
		ok, err := p.prompter.ConfirmSMS()
		if err != nil {
			return err
		}
		if !ok {
			if err := p.prompter.say("Aborting test.\n"); err != nil {
				return err
			}
			p.log.Info("operator declined the SMS cost gate, nothing executed")
			return nil
		}
	}

	features := flags.ActiveFeatures()
	featureStr := models.JoinFeatures(features)

	var result models.TestResult

	p.log.Infow("building target repository", "repo", p.cfg.RepoPath)
	result.Build, err = p.builder.Build(ctx)
	if err != nil {
		return err
	}
	if !result.Build.Succeeded {
		// A broken build is still worth a report: the test phase runs anyway
		// and both outcomes are delivered together.
		p.log.Warn("build failed, continuing with the test phase")
	}

	p.log.Infow("running hardware test suite", "features", featureStr)
	result.Test, err = p.builder.Test(ctx, featureStr)
	if err != nil {
		return err
	}

	result.Finalize(features)

	return p.reporter.Send(ctx, key, result)
}

// Command probe-ci builds the target repository on the real testing probe,
// runs its hardware-dependent test suite and reports the outcome to the
// remote endpoint.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openstratos/probe-ci/internal/config"
	"github.com/openstratos/probe-ci/internal/models"
	"github.com/openstratos/probe-ci/internal/services"
	"github.com/openstratos/probe-ci/pkg/cargo"
	"github.com/openstratos/probe-ci/pkg/report"
)

var version = "dev"

var flags models.FeatureFlags

var rootCmd = &cobra.Command{
	Use:   "probe-ci",
	Short: "Runs the hardware test suite on the real testing probe",
	Long: `probe-ci builds the target repository with the selected hardware
features, runs the tests that need real hardware and sends the results to
the remote endpoint, authenticated with your operator key.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if flags.NoSMS && !flags.Fona {
			return errors.New("--no_sms requires --fona")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewDefault()
		if err != nil {
			return err
		}

		zap.S().Named("harness").Infow("starting run",
			"run_id", uuid.NewString(),
			"config", cfg.DebugMap(),
		)

		builder := cargo.New(cfg.CargoBin, cfg.RepoPath, cargo.NewExecRunner())
		reporter := report.NewClient(cfg.ReportURL)

		pipeline := services.NewPipeline(cfg, builder, reporter, cmd.InOrStdin(), cmd.OutOrStdout())
		return pipeline.Run(cmd.Context(), flags)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flags.Raspicam, "raspicam", false, "Test the Raspberry Pi camera")
	rootCmd.Flags().BoolVar(&flags.Fona, "fona", false, "Test the Adafruit FONA module")
	rootCmd.Flags().BoolVar(&flags.NoSMS, "no_sms", false, "Do not send SMSs (requires --fona)")
	rootCmd.Flags().BoolVar(&flags.GPS, "gps", false, "Test the GPS module")
	rootCmd.Flags().BoolVar(&flags.Telemetry, "telemetry", false, "Test the telemetry module")
	rootCmd.Flags().BoolVar(&flags.NoPowerOff, "no_power_off", false, "Do not power the probe off after testing")
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		printErrorChain(err)
		os.Exit(1)
	}
	color.Green("All tests OK")
}

// printErrorChain renders the error and every wrapped cause, one per line.
func printErrorChain(err error) {
	color.Red("An error occurred: %s", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		color.Red("\tcaused by: %s", cause)
	}
}

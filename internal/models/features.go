package models

import "strings"

// Feature is a named hardware capability compiled into the target
// repository's build.
type Feature string

const (
	FeatureRaspicam   Feature = "raspicam"
	FeatureFona       Feature = "fona"
	FeatureNoSMS      Feature = "no_sms"
	FeatureGPS        Feature = "gps"
	FeatureTelemetry  Feature = "telemetry"
	FeatureNoPowerOff Feature = "no_power_off"
)

// FeatureFlags mirrors the CLI switches selecting which hardware subsystems
// the run exercises. NoSMS requires Fona; that constraint is enforced by the
// command line layer before a FeatureFlags value reaches the pipeline.
type FeatureFlags struct {
	Raspicam   bool
	Fona       bool
	NoSMS      bool
	GPS        bool
	Telemetry  bool
	NoPowerOff bool
}

// ActiveFeatures returns the features to build and test with, always in
// declaration order regardless of how the flags were given. NoSMS only
// suppresses the SMS confirmation gate and is never part of the tested set.
func (f FeatureFlags) ActiveFeatures() []Feature {
	var features []Feature
	if f.Raspicam {
		features = append(features, FeatureRaspicam)
	}
	if f.Fona {
		features = append(features, FeatureFona)
	}
	if f.GPS {
		features = append(features, FeatureGPS)
	}
	if f.Telemetry {
		features = append(features, FeatureTelemetry)
	}
	if f.NoPowerOff {
		features = append(features, FeatureNoPowerOff)
	}
	return features
}

// JoinFeatures renders a feature list as the space-separated string the
// build tool's --features flag expects.
func JoinFeatures(features []Feature) string {
	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, string(f))
	}
	return strings.Join(parts, " ")
}

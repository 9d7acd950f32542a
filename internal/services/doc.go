// Package services implements the orchestration layer of the harness.
//
// A single Pipeline drives one session from operator key entry to report
// delivery:
//
//	key entry ──► SMS cost gate ──► build ──► test ──► finalize ──► report
//
// Every stage is synchronous and gates the next; the only shared resource is
// the interactive input stream, consumed by one stage at a time. Two stages
// deliberately do not follow the fail-fast rule:
//
//   - The SMS cost gate: when the operator answers "n" the session ends
//     early and successfully, with nothing built, tested or sent.
//   - The build phase: a failed build does not abort the session. The test
//     phase still runs and both outcomes are reported together.
//
// Dependencies are interfaces (Builder, Reporter) and injected streams so
// the whole pipeline runs under test with fakes.
package services

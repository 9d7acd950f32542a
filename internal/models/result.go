package models

// PhaseOutcome records what one external command left behind: whether it
// exited successfully and whatever it wrote to its output streams. An exit
// failure is data here, never an error.
type PhaseOutcome struct {
	Succeeded bool
	Stdout    string
	Stderr    string
}

// TestResult is the aggregated outcome of one full harness run. It is
// created empty, filled in place by the build and test phases, finalized
// once with the feature set that was actually tested, and not mutated again.
type TestResult struct {
	Build    PhaseOutcome
	Test     PhaseOutcome
	Features []Feature
}

// Finalize records the feature set the test phase ran with. The list must be
// exactly the one whose joined form parametrized the test command.
func (r *TestResult) Finalize(features []Feature) {
	r.Features = features
}

package types

import "time"

const (
	// PassVerdict marked the verdict as passed when the experiment was accepted
	PassVerdict string = "Pass"
	// FailVerdict marked the verdict as failed when the launch did not go through
	FailVerdict string = "Fail"
	// DryRunVerdict marked the verdict when no request was sent
	DryRunVerdict string = "DryRun"
)

// ResultDetails is for collecting all the launch-result-related details
type ResultDetails struct {
	Verdict    string
	StatusCode int
	Status     string
	Body       string
	Elapsed    time.Duration
	FailStep   string
}

// SetResultAttributes initialise the result before the launch
func SetResultAttributes(resultDetails *ResultDetails) {
	resultDetails.Verdict = "Awaited"
	resultDetails.FailStep = "N/A"
}

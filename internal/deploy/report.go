package deploy

import "frc-deploy/internal/logger"

// Result is the outcome of one step.
type Result struct {
	Step string
	Err  error
}

// Report collects step outcomes in run order.
type Report struct {
	Results []Result
}

func (r *Report) add(step string, err error) {
	r.Results = append(r.Results, Result{Step: step, Err: err})
}

// Failed returns the results of failed steps.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// Print writes one pass/fail line per step.
func (r *Report) Print() {
	for _, result := range r.Results {
		if result.Err != nil {
			logger.Error("%s: %v", result.Step, result.Err)
			continue
		}
		logger.Success("%s", result.Step)
	}
}

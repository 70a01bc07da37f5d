package engine

import "fmt"

// CalculationError wraps a failure inside one of the pipeline stages with
// the stage name and a caller-facing message.
type CalculationError struct {
	Stage string
	Err   error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed in %s: %v. Please verify your inputs and try again", e.Stage, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

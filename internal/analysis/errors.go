package analysis

import "fmt"

// InvalidInputError reports an input image or mask that cannot be
// analyzed: wrong dimensionality, wrong channel count, or mismatched
// spatial size.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// InvalidArgumentError reports an argument outside its allowed set or
// range.
type InvalidArgumentError struct {
	Argument string
	Value    interface{}
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Argument, e.Value, e.Reason)
}

// DegenerateInputError reports an input that passed validation but leaves
// a statistic undefined, such as a hue plane with no non-background
// pixels.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s", e.Reason)
}

package landscape

import "fmt"

// ConfigurationError reports invalid setup parameters. It is fatal at
// construction time and never raised mid-run.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}

// OutOfBoundsError reports a coordinate lookup outside the grid.
// It indicates a bug in the caller, not a recoverable runtime
// condition.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) outside %dx%d landscape", e.X, e.Y, e.Width, e.Height)
}

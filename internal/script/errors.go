package script

import "errors"

// Errors for script operations.
var (
	// ErrScriptClosed is returned when operating on a closed runtime.
	ErrScriptClosed = errors.New("script runtime is closed")

	// ErrExecutionTimeout is returned when a hook runs past its deadline.
	ErrExecutionTimeout = errors.New("script execution timeout")
)

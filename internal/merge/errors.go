package merge

import "fmt"

// CoercionError reports a raw value that cannot be converted to its
// declared kind. It is fatal: the pipeline stops before validation.
type CoercionError struct {
	Option  string
	Message string
}

func (e *CoercionError) Error() string { return e.Message }

// coercionErrorf builds a CoercionError for one option.
func coercionErrorf(option, format string, args ...any) *CoercionError {
	return &CoercionError{Option: option, Message: fmt.Sprintf(format, args...)}
}

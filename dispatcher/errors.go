package dispatcher

import (
	"errors"
	"fmt"
)

// ErrUnknownTool reports a tool name that is not in the catalog. It is
// raised before any gateway call.
var ErrUnknownTool = errors.New("unknown tool")

// ValidationError reports arguments rejected at the dispatcher boundary:
// a missing required field, a malformed date, or an out-of-enum value.
// Validation always completes before the gateway is touched.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

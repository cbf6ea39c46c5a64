package commands

import (
	"errors"
	"fmt"
)

// usageError marks bad command-line input, as opposed to an operation the
// ledger rejected. Usage errors exit with code 2, ledger rejections with 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

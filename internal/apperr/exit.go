package apperr

import "errors"

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error to the process exit status. Errors carrying their
// own status (such as *exec.ExitError from an external engine) keep it.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var de *DefinitionError
	if errors.As(err, &de) {
		return ExitUsage
	}
	var ie *InvalidOptionError
	if errors.As(err, &ie) {
		return ExitUsage
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() > 0 {
		return coded.ExitCode()
	}

	return ExitFailure
}

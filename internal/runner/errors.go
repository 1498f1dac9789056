package runner

import "errors"

var (
	ErrNotStarted = errors.New("process could not be started")
	ErrWaitFailed = errors.New("process could not be waited for")
)

// Exit status reported when the process never started, as shells do for a
// command that cannot be found.
const NOT_STARTED_EXIT_CODE = 127

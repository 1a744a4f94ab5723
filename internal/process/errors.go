package process

import "errors"

var (
	ErrQueryFailed         = errors.New("failed to query running processes")
	ErrProcessStillRunning = errors.New("process still running after termination")
)

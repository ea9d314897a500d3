package service

import "errors"

// Generic failure kinds for unanticipated errors inside service methods.
// The underlying cause is logged, never returned, so internal detail
// cannot leak to the caller.
var (
	ErrRegistrationFailed = errors.New("registration error")
	ErrLoginFailed        = errors.New("login error")
	ErrTaskCreateFailed   = errors.New("task creation error")
	ErrTaskFetchFailed    = errors.New("task fetch error")
	ErrTaskUpdateFailed   = errors.New("task update error")
	ErrTaskDeleteFailed   = errors.New("task deletion error")
)

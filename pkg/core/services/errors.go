package services

import "errors"

// ErrNotAuthorized is returned when the caller's role does not permit
// the requested operation
var ErrNotAuthorized = errors.New("caller is not authorized for this operation")

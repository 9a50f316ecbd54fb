package models

import "errors"

// Closed set of error kinds that handlers are allowed to surface to users.
// Anything outside this set is reported as a generic failure and the raw
// error stays in the server log.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadyExists  = errors.New("already exists")
	ErrBadCredentials = errors.New("bad credentials")
)

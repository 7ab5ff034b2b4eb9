package store

import "errors"

// Sentinel errors shared by all store implementations. Endpoints translate
// these into the API's error responses with errors.Is.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrSoftwareNotFound = errors.New("software not found")
	ErrSoftwareNameTaken = errors.New("software with this name already exists")
	ErrRequestNotFound  = errors.New("request not found")
	ErrDuplicatePending = errors.New("a pending request already exists for this software and access type")
	ErrRequestNotPending = errors.New("only pending requests can be updated")
)

package model

import "errors"

var (
	// ErrNotFound is returned by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by UserStore.Create on a unique
	// constraint violation, so services never sniff driver error codes.
	ErrDuplicateEmail = errors.New("email already exists")
)

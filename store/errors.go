package store

import "errors"

// ErrNotFound indicates that the requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate indicates a uniqueness violation, e.g. registering an email
// that already has an account.
var ErrDuplicate = errors.New("already exists")

// ErrTerminalStatus indicates an attempted transition on a parcel that is
// already delivered or cancelled.
var ErrTerminalStatus = errors.New("parcel is in a terminal status")

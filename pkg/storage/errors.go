package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when a transaction is started from a handle
	// that is already inside one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrInSession is returned when a session is opened from a handle that is
	// already bound to a session or a transaction.
	ErrInSession = errors.New("already in session")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNoRows is returned when an update matched no record.
	ErrNoRows = errors.New("no rows affected")
)

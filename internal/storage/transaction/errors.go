package transaction

import "errors"

// ErrNotFound is returned by Update, Delete, and FindByID when no record
// has the given id. Delete deliberately reports it instead of succeeding
// silently, matching Update.
var ErrNotFound = errors.New("transaction not found")

// StorageError wraps an underlying persistence failure. It is never
// retried here; callers surface it to the user.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

package media

import "errors"

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrFileTooLarge  = errors.New("file exceeds maximum allowed size")
)

// StorageError wraps a failure of the blob store so handlers can report
// it as an upstream error.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

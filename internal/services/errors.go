package services

import "fmt"

// ValidationError indicates a required field is missing or malformed.
// It always maps to a 400 response and is never retried.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// LimitExceededError indicates a merge would push an image set past its
// maximum size. It is raised before any upload is attempted.
type LimitExceededError struct {
	Limit     int
	Requested int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("image limit exceeded: %d requested, max %d", e.Requested, e.Limit)
}

// UploadError wraps any failure inside an upload batch. The batch is
// all-or-nothing: sibling uploads that already succeeded are abandoned
// in storage and the whole operation is reported as failed.
type UploadError struct {
	Cause error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload batch failed: %v", e.Cause)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

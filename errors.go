package assetgen

import (
	"errors"
	"fmt"
)

// RateLimitError is returned when the image service rejects a request for quota reasons.
// The runner treats it like any other failed attempt.
type RateLimitError struct {
	LimitType string
	Model     string
	Err       error // Underlying error from the provider
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s: %s limit", e.Model, e.LimitType)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimitError checks if an error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

var (
	// ErrNoImage is reported when a well-formed response carries no image part.
	ErrNoImage = errors.New("no image in response")

	// ErrStorageNotConfigured is returned when a runner is built without a storage backend.
	ErrStorageNotConfigured = errors.New("storage not configured")
)

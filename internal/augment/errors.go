package augment

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrNotConfigured is returned without any I/O when no credential is set.
	ErrNotConfigured = errors.New("augment: text generation not configured")
	// ErrEmptyCompletion means the service answered without usable text.
	ErrEmptyCompletion = errors.New("augment: empty completion")
)

// UpstreamError captures a failed call to the text-generation service.
type UpstreamError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RateLimited reports whether the service rejected the call with 429.
func (e *UpstreamError) RateLimited() bool {
	return e != nil && e.StatusCode == http.StatusTooManyRequests
}

// AsUpstreamError unwraps err into an UpstreamError when possible.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

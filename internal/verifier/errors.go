package verifier

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("empty response from verification provider")

// RateLimitError indicates a verification provider returned HTTP 429.
type RateLimitError struct {
	Provider string
	Body     string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (status 429): %s", e.Provider, e.Body)
}

package providers

import (
	"errors"
	"fmt"
)

// ProviderError is returned by every upstream client for transport and
// protocol failures. "No match" answers are not errors.
type ProviderError struct {
	Code       string
	Message    string
	Details    string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err carries a *ProviderError anywhere in its chain.
func IsTransportError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

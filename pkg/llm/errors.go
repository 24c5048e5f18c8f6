package llm

import "fmt"

// ErrMissingCredential signals that a provider was asked to make a call
// without an API key configured. Detected before any network I/O.
type ErrMissingCredential struct {
	Provider string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s: API key not configured", e.Provider)
}

// ErrTransport wraps DNS, connection and timeout failures.
type ErrTransport struct {
	Provider string
	Cause    error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Cause)
}

func (e *ErrTransport) Unwrap() error {
	return e.Cause
}

// ErrUpstream carries a non-200 status from the vendor along with the raw
// response body for diagnostics.
type ErrUpstream struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s: upstream error: status %d", e.Provider, e.StatusCode)
}

// ErrMalformedPayload signals a 200 reply whose JSON shape was not the
// expected chat-completion envelope.
type ErrMalformedPayload struct {
	Provider string
	Cause    error
}

func (e *ErrMalformedPayload) Error() string {
	return fmt.Sprintf("%s: unexpected response format: %v", e.Provider, e.Cause)
}

func (e *ErrMalformedPayload) Unwrap() error {
	return e.Cause
}

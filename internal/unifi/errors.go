package unifi

import "fmt"

// APIError is a non-2xx response from the UniFi Network API. Body is the raw
// response text, echoed verbatim so whatever diagnostic the API emitted
// reaches the caller unmodified.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("UniFi API error (%d): %s", e.StatusCode, e.Body)
}

// NetworkError is a transport-level failure (DNS, connection refused, TLS,
// timeout). The underlying error text is preserved; the exchange is never
// retried.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("UniFi API request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

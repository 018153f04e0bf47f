package portfolio

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned by Login for any rejected credential
// pair. The backend's own error detail is intentionally not carried along.
var ErrInvalidCredentials = errors.New("invalid username or password")

// APIError is a non-2xx response from the backend. Detail holds whatever
// error text the backend included, which may be empty.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}

// IsAuthFailure reports whether err is a backend 401/403, i.e. the stored
// bearer token is no longer accepted.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

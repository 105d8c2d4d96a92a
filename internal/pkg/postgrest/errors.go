package postgrest

import (
	"fmt"
	"strings"
)

// TransportError reports a network-level failure: the request never
// produced an HTTP response (DNS, connection refused, timeout).
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("postgrest transport error: %s", e.Message)
}

// BackendError reports a non-2xx response from the backend. Body holds
// whatever the backend sent back, best-effort, for diagnostics.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("postgrest backend error [%d]: %s", e.Status, e.Body)
}

// IsUniqueViolation reports whether the backend rejected a write because
// of a uniqueness constraint. PostgREST answers 409 and surfaces the
// PostgreSQL error code in the body.
func (e *BackendError) IsUniqueViolation() bool {
	return e.Status == 409 || strings.Contains(e.Body, "23505")
}

// DecodeError reports a 2xx response whose body did not match the
// expected shape. RawBody keeps the payload so the caller can inspect it.
type DecodeError struct {
	Message string
	RawBody string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("postgrest decode error: %s | body: %s", e.Message, e.RawBody)
}

package storefront

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned for REST responses outside the 2xx range.
type StatusError struct {
	// Code is the HTTP status code.
	Code int
	// Body is the response body, kept for diagnostics.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storefront returned status %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err is a REST 404. The inventory reconciliation
// path treats this as a protocol-selection signal, not a failure.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// UserErrorsError carries structured user-level errors returned by a
// GraphQL mutation. These are validation failures, not transport failures.
type UserErrorsError struct {
	Errors []UserError
}

// UserError is a single field-level error from a mutation response.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (e *UserErrorsError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ue := range e.Errors {
		if len(ue.Field) > 0 {
			msgs = append(msgs, strings.Join(ue.Field, ".")+": "+ue.Message)
		} else {
			msgs = append(msgs, ue.Message)
		}
	}
	return "storefront user errors: " + strings.Join(msgs, "; ")
}

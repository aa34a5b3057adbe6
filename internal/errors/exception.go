package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode maps an error to the HTTP status the transport layer should
// emit. Anything that is not a tagged Exception counts as a store failure
// and surfaces as the uniform not-found response; the caller never learns
// whether the row was missing or the query broke.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusNotFound
}

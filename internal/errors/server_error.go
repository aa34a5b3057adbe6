package errors

import "net/http"

// ErrTokenSigning is the one failure class that surfaces as a server error
// instead of the uniform not-found response.
var ErrTokenSigning = &Exception{
	Message:    "failed to sign token",
	StatusCode: http.StatusInternalServerError,
}

package errors

import "net/http"

// ErrNotFound covers a missing entity, a denied authorization check and a
// mutation that affected no rows. One error for all three so responses do
// not leak which it was.
var ErrNotFound = &Exception{
	Message:    "not found",
	StatusCode: http.StatusNotFound,
}

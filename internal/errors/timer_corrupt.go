package errors

import "net/http"

// ErrTimerCorrupt marks an active timer without a start timestamp. The
// creation path always sets start, so hitting this means the row was
// tampered with or a write was lost.
var ErrTimerCorrupt = &Exception{
	Message:    "timer has no start timestamp",
	StatusCode: http.StatusInternalServerError,
}

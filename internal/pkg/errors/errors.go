package errors

import (
	"errors"
	"fmt"
)

// Custom application errors
var (
	ErrSeatAPI        = errors.New("seat service request failed")   // Transport, timeout or decode failure talking to the seat service
	ErrRequireLogin   = errors.New("seat service session expired")  // Server rejected the session, a fresh login is required
	ErrNoAccount      = errors.New("no active account")             // Operation needs a logged-in account
	ErrPersistence    = errors.New("failed to persist reservation") // Archive or database write failure
	ErrScheduling     = errors.New("failed to schedule alert")      // Cron job registration failure
	ErrDelivery       = errors.New("failed to deliver alert")       // Push channel failure on a fired alert
	ErrInvalidPage    = errors.New("invalid history page")          // Page numbers start at 1
	ErrInternalServer = errors.New("internal server error")         // Generic internal error
)

// FailedError is an application-level failure reported by the seat service
// itself: the request went through but the server answered with a structured
// business error. Code and Message come straight from the response body so
// the caller can render them.
type FailedError struct {
	Code    string
	Message string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("seat service rejected request (code %s): %s", e.Code, e.Message)
}

// AsFailed unwraps err into a *FailedError if the chain contains one.
func AsFailed(err error) (*FailedError, bool) {
	var failed *FailedError
	if errors.As(err, &failed) {
		return failed, true
	}
	return nil, false
}

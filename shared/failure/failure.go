package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason carries a stable machine-readable cause for booking and validation
// rejections so callers do not have to match on message text.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// Rejection reasons surfaced by the registries, the availability engine and
// the booking manager. These are recoverable decisions, not faults.
const (
	ReasonFieldValidation   = "field_validation"
	ReasonRoomNotFound      = "room_not_found"
	ReasonGuestNotFound     = "guest_not_found"
	ReasonBookingNotFound   = "booking_not_found"
	ReasonInvalidDateInput  = "invalid_date_input"
	ReasonDateInPast        = "date_in_past"
	ReasonInvalidRange      = "invalid_range"
	ReasonDurationExceeded  = "duration_exceeded"
	ReasonRoomNotAvailable  = "room_not_available"
	ReasonRoomUnavailable   = "room_unavailable"
	ReasonPriceOutOfBounds  = "price_out_of_bounds"
	ReasonInvalidTransition = "invalid_transition"
)

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Rejection returns a 400 Failure tagged with a stable rejection reason.
func Rejection(reason, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  reason,
		Message: msg,
	}
}

// NotFoundWithReason returns a 404 Failure tagged with a stable rejection reason.
func NotFoundWithReason(reason, msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  reason,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the rejection reason of an error interface, or an empty
// string when the error carries none.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// IsReason reports whether err is a Failure carrying the given reason.
func IsReason(err error, reason string) bool {
	return GetReason(err) == reason
}

package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"lodge/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	result := failure.BadRequest(errors.New("bad input"))

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}

	if failure.BadRequest(nil) != nil {
		t.Error("expected nil error to produce nil failure")
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}

		if f.Message != "custom bad request" {
			t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}
}

func TestRejection(t *testing.T) {
	result := failure.Rejection(failure.ReasonInvalidRange, "check-out must be after check-in")

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}

		if f.Reason != failure.ReasonInvalidRange {
			t.Errorf("expected reason to be %s, got %s", failure.ReasonInvalidRange, f.Reason)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}
}

func TestNotFoundWithReason(t *testing.T) {
	result := failure.NotFoundWithReason(failure.ReasonRoomNotFound, "room does not exist")

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}

		if f.Reason != failure.ReasonRoomNotFound {
			t.Errorf("expected reason to be %s, got %s", failure.ReasonRoomNotFound, f.Reason)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}
}

func TestInternalError(t *testing.T) {
	result := failure.InternalError(errors.New("boom"))

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusInternalServerError {
			t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, f.Code)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil error to produce nil failure")
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("guest")

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}
}

func TestConflict(t *testing.T) {
	result := failure.Conflict("email address is already registered")

	var f *failure.Failure
	if errors.As(result, &f) {
		if f.Code != http.StatusConflict {
			t.Errorf("expected code to be %d, got %d", http.StatusConflict, f.Code)
		}
	} else {
		t.Error("expected result to be a *Failure")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "plain error",
			input:    errors.New("plain"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.input); code != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, code)
			}
		})
	}
}

func TestGetReason(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "tagged rejection",
			input:    failure.Rejection(failure.ReasonDateInPast, "check-in date is in the past"),
			expected: failure.ReasonDateInPast,
		},
		{
			name:     "untagged failure",
			input:    failure.BadRequestFromString("test"),
			expected: "",
		},
		{
			name:     "plain error",
			input:    errors.New("plain"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if reason := failure.GetReason(tt.input); reason != tt.expected {
				t.Errorf("expected reason to be %q, got %q", tt.expected, reason)
			}
		})
	}
}

func TestIsReason(t *testing.T) {
	err := failure.Rejection(failure.ReasonRoomUnavailable, "the room is already booked for the selected dates")

	if !failure.IsReason(err, failure.ReasonRoomUnavailable) {
		t.Error("expected IsReason to match the carried reason")
	}

	if failure.IsReason(err, failure.ReasonRoomNotAvailable) {
		t.Error("expected IsReason to reject a different reason")
	}
}

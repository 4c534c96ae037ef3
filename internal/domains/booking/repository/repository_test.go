package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lodge/shared/constant"
	"lodge/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapConflictError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
		wantCode   int
	}{
		{
			name:       "exclusion violation becomes a rejection",
			err:        &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation), Constraint: "bookings_no_overlap"},
			wantReason: failure.ReasonRoomUnavailable,
			wantCode:   http.StatusBadRequest,
		},
		{
			name:       "wrapped exclusion violation is still detected",
			err:        fmt.Errorf("updating booking: %w", &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)}),
			wantReason: failure.ReasonRoomUnavailable,
			wantCode:   http.StatusBadRequest,
		},
		{
			name: "other pq errors pass through",
			err:  &pq.Error{Code: "23503"},
		},
		{
			name: "plain errors pass through",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapConflictError(tt.err)

			if tt.wantReason == "" {
				assert.Equal(t, tt.err, got)
				assert.Empty(t, failure.GetReason(got))
			} else {
				assert.Equal(t, tt.wantReason, failure.GetReason(got))
				assert.Equal(t, tt.wantCode, failure.GetCode(got))
			}
		})
	}
}

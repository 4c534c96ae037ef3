package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	allowed := map[string][]string{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusCheckedIn, model.StatusCancelled},
		model.StatusCheckedIn: {model.StatusCheckedOut, model.StatusCancelled},
	}

	statuses := []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			assert.Equal(t, want, model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_TerminalStatuses(t *testing.T) {
	for _, terminal := range []string{model.StatusCheckedOut, model.StatusCancelled} {
		for _, to := range []string{
			model.StatusPending,
			model.StatusConfirmed,
			model.StatusCheckedIn,
			model.StatusCheckedOut,
			model.StatusCancelled,
		} {
			assert.False(t, model.CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, model.CanTransition("unknown", model.StatusConfirmed))
	assert.False(t, model.CanTransition(model.StatusPending, "unknown"))
}

func TestBlockingStatuses(t *testing.T) {
	blocking := model.BlockingStatuses()

	assert.ElementsMatch(t, []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
	}, blocking)
	assert.NotContains(t, blocking, model.StatusCancelled)
}

func TestBooking_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	booking := model.Booking{
		CheckIn:  day(10),
		CheckOut: day(15),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{name: "identical", checkIn: day(10), checkOut: day(15), want: true},
		{name: "starts before ends inside", checkIn: day(8), checkOut: day(12), want: true},
		{name: "starts inside ends after", checkIn: day(12), checkOut: day(18), want: true},
		{name: "contains", checkIn: day(8), checkOut: day(18), want: true},
		{name: "contained", checkIn: day(11), checkOut: day(14), want: true},
		{name: "ends at check-in", checkIn: day(5), checkOut: day(10), want: false},
		{name: "starts at check-out", checkIn: day(15), checkOut: day(20), want: false},
		{name: "before", checkIn: day(1), checkOut: day(5), want: false},
		{name: "after", checkIn: day(20), checkOut: day(25), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

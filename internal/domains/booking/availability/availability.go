// Package availability decides whether a candidate stay can be booked
// against a room's current state and its existing bookings. The engine is a
// pure advisor: it never mutates anything and always answers with either nil
// or a recoverable rejection, so callers can surface the reason verbatim.
package availability

import (
	"fmt"
	"slices"
	"time"

	"lodge/internal/domains/booking/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const DefaultMaxStayDays = 14

type Engine struct {
	// MaxStayDays is the inclusive upper bound on stay length. A stay of
	// exactly MaxStayDays nights passes; one night more is rejected.
	MaxStayDays int

	// BookableStatuses is the set of room statuses that accept bookings.
	// Empty means only rooms marked Available.
	BookableStatuses []string

	// Now is the clock used for past-date checks. Nil means timezone.Now.
	Now func() time.Time
}

func New(maxStayDays int, bookableStatuses []string) *Engine {
	if maxStayDays <= 0 {
		maxStayDays = DefaultMaxStayDays
	}

	return &Engine{
		MaxStayDays:      maxStayDays,
		BookableStatuses: bookableStatuses,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}

	return timezone.Now()
}

func (e *Engine) maxStay() time.Duration {
	days := e.MaxStayDays
	if days <= 0 {
		days = DefaultMaxStayDays
	}

	return time.Duration(days) * 24 * time.Hour
}

func (e *Engine) bookable(status string) bool {
	if len(e.BookableStatuses) == 0 {
		return status == roomModel.StatusAvailable
	}

	return slices.Contains(e.BookableStatuses, status)
}

// Evaluate checks a candidate [checkIn, checkOut) interval against the room
// and its existing bookings. Checks run in a fixed order and the first
// failure wins, so rejection reasons are deterministic. Bookings whose status
// does not hold the room (cancelled) are skipped; intervals are half-open, so
// a stay that starts exactly when another ends does not conflict.
func (e *Engine) Evaluate(room roomModel.Room, checkIn, checkOut time.Time, existing []model.Booking) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return failure.Rejection(failure.ReasonInvalidDateInput, "check-in and check-out must be valid dates") //nolint:wrapcheck
	}

	// Past-date checks are at day granularity: a stay starting today is legal.
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if checkIn.Before(today) || checkOut.Before(today) {
		return failure.Rejection(failure.ReasonDateInPast, "check-in and check-out dates cannot be in the past") //nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return failure.Rejection(failure.ReasonInvalidRange, "check-in date must be before check-out date") //nolint:wrapcheck
	}

	if checkOut.Sub(checkIn) > e.maxStay() {
		return failure.Rejection(failure.ReasonDurationExceeded,
			fmt.Sprintf("stay cannot exceed %d days", e.MaxStayDays)) //nolint:wrapcheck
	}

	if !e.bookable(room.Status) {
		return failure.Rejection(failure.ReasonRoomNotAvailable, "room is not available for booking") //nolint:wrapcheck
	}

	blocking := model.BlockingStatuses()
	for i := range existing {
		other := &existing[i]
		if !slices.Contains(blocking, other.Status) {
			continue
		}

		if other.Overlaps(checkIn, checkOut) {
			return failure.Rejection(failure.ReasonRoomUnavailable, "the room is already booked for the selected dates") //nolint:wrapcheck
		}
	}

	return nil
}

package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldGuestID       = "guest_id"
	FieldStatus        = "status"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldPaymentStatus = "payment_status"
	FieldTotalPrice    = "total_price"
	FieldCreatedBy     = "created_by"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Total price bounds in currency units, inclusive.
const (
	MinTotalPrice = 50.00
	MaxTotalPrice = 500.00
)

// transitions is the booking status state machine. checked_out and cancelled
// are terminal.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// BlockingStatuses are the booking statuses that hold a room's dates.
// Cancelled bookings release their interval; checked_out keeps it because the
// stay actually occupied those dates.
func BlockingStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut}
}

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	GuestID       string    `db:"guest_id"`
	Status        string    `db:"status"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	PaymentStatus bool      `db:"payment_status"`
	TotalPrice    float64   `db:"total_price"`
	model.Metadata
}

// Overlaps reports whether the booking's half-open [check_in, check_out)
// interval intersects the given candidate interval.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn)
}

package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldRate       = "rate"
	FieldStatus     = "status"
	FieldCapacity   = "capacity"
	FieldImage      = "image"
)

const (
	TypeSingle = "Single"
	TypeDouble = "Double"
	TypeSuite  = "Suite"

	StatusAvailable        = "Available"
	StatusBooked           = "Booked"
	StatusUnderMaintenance = "Under Maintenance"
)

// Rate bounds in currency units, inclusive.
const (
	MinRate = 50.00
	MaxRate = 500.00

	MinCapacity = 1
	MaxCapacity = 5
)

type Room struct {
	ID         string  `db:"id"`
	RoomNumber string  `db:"room_number"`
	RoomType   string  `db:"room_type"`
	Rate       float64 `db:"rate"`
	Status     string  `db:"status"`
	Capacity   int     `db:"capacity"`
	Image      string  `db:"image"`
	model.Metadata
}

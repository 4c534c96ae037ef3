package model

import "lodge/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldAddress     = "address"
	FieldStatus      = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Guest struct {
	ID          string `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	PhoneNumber string `db:"phone_number"`
	Address     string `db:"address"`
	Status      string `db:"status"`
	model.Metadata
}

package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentDate   = "payment_date"
)

const (
	MethodCreditCard = "Credit Card"
	MethodDebitCard  = "Debit Card"
	MethodPayPal     = "PayPal"
)

// Amount bounds are enforced at the request layer as well; kept here so
// services can validate records built outside the DTO path.
const (
	MaxAmount = 10000.00
)

type Payment struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	Amount        float64   `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	PaymentDate   time.Time `db:"payment_date"`
	model.Metadata
}

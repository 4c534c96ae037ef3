package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string  `json:"room_id"     validate:"required"`
	GuestID    string  `json:"guest_id"    validate:"required"`
	CheckIn    string  `json:"check_in"    validate:"required"`
	CheckOut   string  `json:"check_out"   validate:"required"`
	TotalPrice float64 `json:"total_price" validate:"required"`
	Status     string  `json:"status"      validate:"omitempty,oneof=pending confirmed cancelled checked_in checked_out"`
}

// ParseDates converts the request's date strings, accepting either a plain
// date or a full RFC3339 timestamp. A malformed value is a recoverable
// invalid_date_input rejection, never a fatal error.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(c.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err = ParseDate(c.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return checkIn, checkOut, nil
}

func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, failure.Rejection(failure.ReasonInvalidDateInput, "date value is required") //nolint:wrapcheck
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err == nil {
		return parsed, nil
	}

	parsed, err = timezone.Parse(constant.DateFormat, value)
	if err == nil {
		return parsed, nil
	}

	return time.Time{}, failure.Rejection(failure.ReasonInvalidDateInput, "invalid date format") //nolint:wrapcheck
}

func (c *CreateBookingRequest) ToModel(user, defaultStatus string, checkIn, checkOut time.Time) model.Booking {
	status := defaultStatus
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		GuestID:    c.GuestID,
		Status:     status,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: c.TotalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest moves or reprices a stay. Status changes go through
// the dedicated status endpoint so the transition rules stay in one place.
type UpdateBookingRequest struct {
	CheckIn    string   `json:"check_in"    validate:"omitempty"`
	CheckOut   string   `json:"check_out"   validate:"omitempty"`
	TotalPrice *float64 `db:"total_price"  json:"total_price" validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled checked_in checked_out"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	GuestID       string  `json:"guest_id"`
	Status        string  `json:"status"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	PaymentStatus bool    `json:"payment_status"`
	TotalPrice    float64 `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.Status = model.Status
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.PaymentStatus = model.PaymentStatus
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

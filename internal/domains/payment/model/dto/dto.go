package dto

import (
	"time"

	"lodge/internal/domains/payment/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0,lte=10000"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof='Credit Card' 'Debit Card' PayPal"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentDate:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentDate   string  `json:"payment_date"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentDate = model.PaymentDate.Format(time.RFC3339)
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

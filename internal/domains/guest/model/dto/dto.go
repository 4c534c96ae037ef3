package dto

import (
	"lodge/internal/domains/guest/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"   validate:"required,max=100"`
	LastName    string `json:"last_name"    validate:"required,max=100"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,len=10,numeric"`
	Address     string `json:"address"      validate:"omitempty,max=500"`
	Status      string `json:"status"       validate:"omitempty,oneof=active inactive"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.Guest{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName   string `db:"first_name"   json:"first_name"   validate:"omitempty,max=100"`
	LastName    string `db:"last_name"    json:"last_name"    validate:"omitempty,max=100"`
	Email       string `db:"email"        json:"email"        validate:"omitempty,email,max=100"`
	PhoneNumber string `db:"phone_number" json:"phone_number" validate:"omitempty,len=10,numeric"`
	Address     string `db:"address"      json:"address"      validate:"omitempty,max=500"`
	Status      string `db:"status"       json:"status"       validate:"omitempty,oneof=active inactive"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.Address = model.Address
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

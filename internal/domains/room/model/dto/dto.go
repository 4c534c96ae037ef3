package dto

import (
	"mime/multipart"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string                `json:"room_number" validate:"required,alphanum,max=50"`
	RoomType   string                `json:"room_type"   validate:"required,oneof=Single Double Suite"`
	Rate       float64               `json:"rate"        validate:"required,gte=50,lte=500"`
	Status     string                `json:"status"      validate:"required,oneof=Available Booked 'Under Maintenance'"`
	Capacity   int                   `json:"capacity"    validate:"required,min=1,max=5"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomType:   c.RoomType,
		Rate:       c.Rate,
		Status:     c.Status,
		Capacity:   c.Capacity,
		Image:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ReplaceRoomRequest is the full-update payload. Unlike UpdateRoomRequest
// every column is required, so a PUT always rewrites the whole row.
type ReplaceRoomRequest struct {
	RoomNumber string                `json:"room_number" validate:"required,alphanum,max=50"`
	RoomType   string                `json:"room_type"   validate:"required,oneof=Single Double Suite"`
	Rate       float64               `json:"rate"        validate:"required,gte=50,lte=500"`
	Status     string                `json:"status"      validate:"required,oneof=Available Booked 'Under Maintenance'"`
	Capacity   int                   `json:"capacity"    validate:"required,min=1,max=5"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

// ToUpdateRequest reuses the partial-update path with every column present.
func (r *ReplaceRoomRequest) ToUpdateRequest() UpdateRoomRequest {
	return UpdateRoomRequest{
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Rate:       &r.Rate,
		Status:     r.Status,
		Capacity:   &r.Capacity,
		Image:      r.Image,
		ImageFile:  r.ImageFile,
	}
}

type UpdateRoomRequest struct {
	RoomNumber string                `db:"room_number" json:"room_number" validate:"omitempty,alphanum,max=50"`
	RoomType   string                `db:"room_type"   json:"room_type"   validate:"omitempty,oneof=Single Double Suite"`
	Rate       *float64              `db:"rate"        json:"rate"        validate:"omitempty,gte=50,lte=500"`
	Status     string                `db:"status"      json:"status"      validate:"omitempty,oneof=Available Booked 'Under Maintenance'"`
	Capacity   *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=1,max=5"`
	Image      *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID         string  `json:"id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"type"`
	Rate       float64 `json:"rate"`
	Status     string  `json:"status"`
	Capacity   int     `json:"capacity"`
	Image      string  `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Rate = model.Rate
	r.Status = model.Status
	r.Capacity = model.Capacity
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

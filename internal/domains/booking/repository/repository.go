package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListBlocking(ctx context.Context, roomID string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a booking. The bookings table carries an exclusion
// constraint on (room_id, daterange(check_in, check_out)) for blocking
// statuses, so a concurrent writer that lost the race surfaces here as a
// room_unavailable rejection rather than a server error.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	if err := repo.Repository.Insert(ctx, booking); err != nil {
		return mapConflictError(err)
	}

	return nil
}

// Update writes booking fields. A reschedule moves check_in/check_out and
// can trip the same exclusion constraint as Insert, so it gets the same
// mapping.
func (repo *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	if err := repo.Repository.Update(ctx, req, filter); err != nil {
		return mapConflictError(err)
	}

	return nil
}

func mapConflictError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Rejection(failure.ReasonRoomUnavailable, "the room is already booked for the selected dates") //nolint:wrapcheck
	}

	return err
}

// ListBlocking returns the room's bookings whose status still holds dates.
func (repo *repositoryImpl) ListBlocking(ctx context.Context, roomID string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.BlockingStatuses(),
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/availability"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/internal/events"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	MarkPaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	engine    *availability.Engine
	events    events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		engine:    availability.New(cfg.Booking.MaxStayDays, cfg.Booking.BookableStatuses),
		events:    publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create validates a booking request end to end: references, price bounds,
// then the availability decision, in that order so the caller always sees the
// first failing rule.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	room, err := s.resolveRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFoundWithReason(failure.ReasonGuestNotFound, "guest does not exist") //nolint:wrapcheck
	}

	if req.TotalPrice < model.MinTotalPrice || req.TotalPrice > model.MaxTotalPrice {
		return res, failure.Rejection(failure.ReasonPriceOutOfBounds,
			fmt.Sprintf("total price must be between %.2f and %.2f", model.MinTotalPrice, model.MaxTotalPrice)) //nolint:wrapcheck
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	if err = s.evaluate(ctx, room, checkIn, checkOut, constant.Empty); err != nil {
		return res, err
	}

	booking := req.ToModel(user, s.cfg.Booking.DefaultStatus, checkIn, checkOut)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.events.PublishBooking(ctx, events.BookingEvent{
		Type:      events.TypeBookingCreated,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		ToStatus:  booking.Status,
	})

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

// CheckAvailability answers the room-availability query without touching any
// state. The engine's rejection is returned verbatim.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.resolveRoom(ctx, roomID)
	if err != nil {
		return err
	}

	return s.evaluate(ctx, room, checkIn, checkOut, constant.Empty)
}

func (s *serviceImpl) resolveRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFoundWithReason(failure.ReasonRoomNotFound, "room does not exist") //nolint:wrapcheck
	}

	return room, nil
}

// evaluate loads the room's blocking bookings at decision time and runs the
// availability engine. excludeID skips the booking being rescheduled.
func (s *serviceImpl) evaluate(ctx context.Context, room roomModel.Room, checkIn, checkOut time.Time, excludeID string) error {
	existing, err := s.repo.ListBlocking(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blocking bookings")

		return fmt.Errorf("failed to list blocking bookings: %w", err)
	}

	if excludeID != constant.Empty {
		kept := existing[:0]
		for _, b := range existing {
			if b.ID != excludeID {
				kept = append(kept, b)
			}
		}

		existing = kept
	}

	return s.engine.Evaluate(room, checkIn, checkOut, existing) //nolint:wrapcheck
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFoundWithReason(failure.ReasonBookingNotFound, "booking does not exist") //nolint:wrapcheck
	}

	return booking, nil
}

// Update moves or reprices an existing booking. New dates are re-evaluated
// against the room with the booking's own interval excluded. Bookings in a
// terminal status cannot be changed.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCheckedOut || booking.Status == model.StatusCancelled {
		return failure.Rejection(failure.ReasonInvalidTransition,
			fmt.Sprintf("booking in status %q cannot be modified", booking.Status)) //nolint:wrapcheck
	}

	if req.TotalPrice != nil && (*req.TotalPrice < model.MinTotalPrice || *req.TotalPrice > model.MaxTotalPrice) {
		return failure.Rejection(failure.ReasonPriceOutOfBounds,
			fmt.Sprintf("total price must be between %.2f and %.2f", model.MinTotalPrice, model.MaxTotalPrice)) //nolint:wrapcheck
	}

	updated := shared.TransformFields(req, user)

	if req.CheckIn != "" || req.CheckOut != "" {
		checkIn := booking.CheckIn
		checkOut := booking.CheckOut

		if req.CheckIn != "" {
			if checkIn, err = dto.ParseDate(req.CheckIn); err != nil {
				return err
			}
		}

		if req.CheckOut != "" {
			if checkOut, err = dto.ParseDate(req.CheckOut); err != nil {
				return err
			}
		}

		room, err := s.resolveRoom(ctx, booking.RoomID)
		if err != nil {
			return err
		}

		if err = s.evaluate(ctx, room, checkIn, checkOut, booking.ID); err != nil {
			return err
		}

		updated[model.FieldCheckIn] = checkIn
		updated[model.FieldCheckOut] = checkOut
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus walks the booking lifecycle state machine. An edge the
// machine does not define is rejected with invalid_transition.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(booking.Status, status) {
		return failure.Rejection(failure.ReasonInvalidTransition,
			fmt.Sprintf("cannot transition booking from %q to %q", booking.Status, status)) //nolint:wrapcheck
	}

	updated := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return err
	}

	s.events.PublishBooking(ctx, events.BookingEvent{
		Type:       events.TypeBookingStatusChanged,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestID:    booking.GuestID,
		FromStatus: booking.Status,
		ToStatus:   status,
	})

	s.invalidate(ctx, id)

	return nil
}

// MarkPaid flips the booking's payment flag. Called by the payment recorder.
func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	updated := map[string]any{
		model.FieldPaymentStatus: true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking as paid")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/availability"
	"lodge/internal/domains/booking/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/failure"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixedEngine() *availability.Engine {
	engine := availability.New(0, nil)
	engine.Now = func() time.Time {
		return time.Date(2025, time.March, 1, 15, 30, 0, 0, time.UTC)
	}

	return engine
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:         "room-103c",
		RoomNumber: "103C",
		RoomType:   roomModel.TypeDouble,
		Rate:       150.00,
		Status:     roomModel.StatusAvailable,
		Capacity:   2,
	}
}

func TestEngine_Evaluate_DateRules(t *testing.T) {
	engine := fixedEngine()
	room := availableRoom()

	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		wantReason string
	}{
		{
			name:     "valid future stay",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 15),
		},
		{
			name:     "one night stay",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 11),
		},
		{
			name:     "stay starting today is legal",
			checkIn:  date(2025, time.March, 1),
			checkOut: date(2025, time.March, 3),
		},
		{
			name:     "fourteen day stay at the limit",
			checkIn:  date(2025, time.March, 1),
			checkOut: date(2025, time.March, 15),
		},
		{
			name:       "fifteen day stay exceeds the limit",
			checkIn:    date(2025, time.March, 1),
			checkOut:   date(2025, time.March, 16),
			wantReason: failure.ReasonDurationExceeded,
		},
		{
			name:       "zero check-in",
			checkOut:   date(2025, time.March, 10),
			wantReason: failure.ReasonInvalidDateInput,
		},
		{
			name:       "zero check-out",
			checkIn:    date(2025, time.March, 10),
			wantReason: failure.ReasonInvalidDateInput,
		},
		{
			name:       "check-in in the past",
			checkIn:    date(2025, time.February, 25),
			checkOut:   date(2025, time.March, 3),
			wantReason: failure.ReasonDateInPast,
		},
		{
			name:       "both dates in the past",
			checkIn:    date(2024, time.December, 20),
			checkOut:   date(2024, time.December, 25),
			wantReason: failure.ReasonDateInPast,
		},
		{
			name:       "check-out before check-in",
			checkIn:    date(2025, time.March, 15),
			checkOut:   date(2025, time.March, 10),
			wantReason: failure.ReasonInvalidRange,
		},
		{
			name:       "check-in equals check-out",
			checkIn:    date(2025, time.March, 10),
			checkOut:   date(2025, time.March, 10),
			wantReason: failure.ReasonInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Evaluate(room, tt.checkIn, tt.checkOut, nil)

			if tt.wantReason == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			}
		})
	}
}

func TestEngine_Evaluate_RoomStatus(t *testing.T) {
	engine := fixedEngine()

	checkIn := date(2025, time.March, 10)
	checkOut := date(2025, time.March, 12)

	tests := []struct {
		name       string
		status     string
		bookable   []string
		wantReason string
	}{
		{
			name:   "available room",
			status: roomModel.StatusAvailable,
		},
		{
			name:       "booked room",
			status:     roomModel.StatusBooked,
			wantReason: failure.ReasonRoomNotAvailable,
		},
		{
			name:       "room under maintenance",
			status:     roomModel.StatusUnderMaintenance,
			wantReason: failure.ReasonRoomNotAvailable,
		},
		{
			name:     "booked room with widened bookable set",
			status:   roomModel.StatusBooked,
			bookable: []string{roomModel.StatusAvailable, roomModel.StatusBooked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine.BookableStatuses = tt.bookable

			room := availableRoom()
			room.Status = tt.status

			err := engine.Evaluate(room, checkIn, checkOut, nil)

			if tt.wantReason == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			}
		})
	}
}

func TestEngine_Evaluate_Conflicts(t *testing.T) {
	engine := fixedEngine()
	room := availableRoom()

	existing := []model.Booking{
		{
			ID:       "existing",
			RoomID:   room.ID,
			Status:   model.StatusConfirmed,
			CheckIn:  date(2025, time.March, 10),
			CheckOut: date(2025, time.March, 15),
		},
	}

	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		wantReason string
	}{
		{
			name:       "identical interval",
			checkIn:    date(2025, time.March, 10),
			checkOut:   date(2025, time.March, 15),
			wantReason: failure.ReasonRoomUnavailable,
		},
		{
			name:       "overlap at the start",
			checkIn:    date(2025, time.March, 8),
			checkOut:   date(2025, time.March, 11),
			wantReason: failure.ReasonRoomUnavailable,
		},
		{
			name:       "overlap at the end",
			checkIn:    date(2025, time.March, 14),
			checkOut:   date(2025, time.March, 18),
			wantReason: failure.ReasonRoomUnavailable,
		},
		{
			name:       "candidate contains existing",
			checkIn:    date(2025, time.March, 8),
			checkOut:   date(2025, time.March, 18),
			wantReason: failure.ReasonRoomUnavailable,
		},
		{
			name:       "candidate inside existing",
			checkIn:    date(2025, time.March, 11),
			checkOut:   date(2025, time.March, 13),
			wantReason: failure.ReasonRoomUnavailable,
		},
		{
			name:     "back to back before existing",
			checkIn:  date(2025, time.March, 8),
			checkOut: date(2025, time.March, 10),
		},
		{
			name:     "back to back after existing",
			checkIn:  date(2025, time.March, 15),
			checkOut: date(2025, time.March, 18),
		},
		{
			name:     "disjoint interval",
			checkIn:  date(2025, time.March, 20),
			checkOut: date(2025, time.March, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Evaluate(room, tt.checkIn, tt.checkOut, existing)

			if tt.wantReason == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			}
		})
	}
}

func TestEngine_Evaluate_SkipsCancelledBookings(t *testing.T) {
	engine := fixedEngine()
	room := availableRoom()

	existing := []model.Booking{
		{
			ID:       "cancelled",
			RoomID:   room.ID,
			Status:   model.StatusCancelled,
			CheckIn:  date(2025, time.March, 10),
			CheckOut: date(2025, time.March, 15),
		},
	}

	err := engine.Evaluate(room, date(2025, time.March, 10), date(2025, time.March, 15), existing)
	assert.NoError(t, err)
}

func TestEngine_Evaluate_AllNonCancelledStatusesBlock(t *testing.T) {
	engine := fixedEngine()
	room := availableRoom()

	for _, status := range []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
	} {
		t.Run(status, func(t *testing.T) {
			existing := []model.Booking{
				{
					ID:       "blocking",
					RoomID:   room.ID,
					Status:   status,
					CheckIn:  date(2025, time.March, 10),
					CheckOut: date(2025, time.March, 15),
				},
			}

			err := engine.Evaluate(room, date(2025, time.March, 12), date(2025, time.March, 14), existing)
			assert.Error(t, err)
			assert.Equal(t, failure.ReasonRoomUnavailable, failure.GetReason(err))
		})
	}
}

func TestEngine_New_DefaultMaxStay(t *testing.T) {
	engine := availability.New(0, nil)
	assert.Equal(t, availability.DefaultMaxStayDays, engine.MaxStayDays)

	engine = availability.New(7, nil)
	assert.Equal(t, 7, engine.MaxStayDays)
}
